package ui

// text holds the display strings for one language
type text struct {
	Title       string
	Placeholder string
	Searching   string
	You         string
	Assistant   string
	Articles    string
	Article     string
	NoReply     string
	Help        string
}

var (
	textEN = text{
		Title:       "LexBG · Legal Assistant",
		Placeholder: "Ask about Bulgarian labor law…",
		Searching:   "Searching the Labor Code…",
		You:         "you",
		Assistant:   "assistant",
		Articles:    "Articles",
		Article:     "Article",
		NoReply:     "No reply was received for this question.",
		Help:        "enter: send · esc: quit · pgup/pgdn: scroll",
	}
	textBG = text{
		Title:       "LexBG · Правен асистент",
		Placeholder: "Задайте въпрос за трудовото право…",
		Searching:   "Търся в Кодекса на труда…",
		You:         "вие",
		Assistant:   "асистент",
		Articles:    "Членове",
		Article:     "Член",
		NoReply:     "Не беше получен отговор на този въпрос.",
		Help:        "enter: изпрати · esc: изход · pgup/pgdn: превъртане",
	}
)

func textFor(bulgarian bool) text {
	if bulgarian {
		return textBG
	}
	return textEN
}
