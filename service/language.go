package service

const (
	cyrillicFirst = 0x0400
	cyrillicLast  = 0x04FF
)

// LooksBulgarian reports whether text contains at least one character from
// the Cyrillic block. It only selects display strings.
func LooksBulgarian(text string) bool {
	for _, r := range text {
		if r >= cyrillicFirst && r <= cyrillicLast {
			return true
		}
	}
	return false
}

// Localized strings shown to the user
const (
	CouldNotProcessBG = "Съжалявам, не успях да обработя вашия въпрос. Моля, опитайте отново по-късно."
	CouldNotProcessEN = "Sorry, I could not process your question. Please try again later."

	UnavailableBG = "Услугата за правни въпроси в момента не е достъпна. Моля, опитайте отново по-късно."
	UnavailableEN = "The legal assistant service is currently unavailable. Please try again later."
)

// CouldNotProcessMessage returns the client-side fallback answer for query
func CouldNotProcessMessage(query string) string {
	if LooksBulgarian(query) {
		return CouldNotProcessBG
	}
	return CouldNotProcessEN
}

// UnavailableMessage returns the proxy-side fallback answer for query
func UnavailableMessage(query string) string {
	if LooksBulgarian(query) {
		return UnavailableBG
	}
	return UnavailableEN
}
