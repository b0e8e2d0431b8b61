package service

import "strings"

// minMarkersPresent is how many of a family's four markers must occur for the
// family to be selected. One missing section is tolerated.
const minMarkersPresent = 3

// markerFamily is one bilingual spelling of the four section headings
type markerFamily struct {
	name    string
	markers [4]string
}

// markerFamilies is evaluated in order; the first family that reaches
// minMarkersPresent wins, even if a later family has more markers present.
var markerFamilies = []markerFamily{
	{name: "bg-upper-colon", markers: [4]string{"СЕКЦИЯ 1:", "СЕКЦИЯ 2:", "СЕКЦИЯ 3:", "СЕКЦИЯ 4:"}},
	{name: "en-upper-colon", markers: [4]string{"SECTION 1:", "SECTION 2:", "SECTION 3:", "SECTION 4:"}},
	{name: "bg-title-colon", markers: [4]string{"Секция 1:", "Секция 2:", "Секция 3:", "Секция 4:"}},
	{name: "en-title-colon", markers: [4]string{"Section 1:", "Section 2:", "Section 3:", "Section 4:"}},
	{name: "bg-upper-period", markers: [4]string{"СЕКЦИЯ 1.", "СЕКЦИЯ 2.", "СЕКЦИЯ 3.", "СЕКЦИЯ 4."}},
	{name: "en-upper-period", markers: [4]string{"SECTION 1.", "SECTION 2.", "SECTION 3.", "SECTION 4."}},
	{name: "bg-title-period", markers: [4]string{"Секция 1.", "Секция 2.", "Секция 3.", "Секция 4."}},
	{name: "en-title-period", markers: [4]string{"Section 1.", "Section 2.", "Section 3.", "Section 4."}},
}

var (
	sectionLabelsBG = [4]string{"Приложими членове", "Обобщение", "Законов текст", "Последици и препоръки"}
	sectionLabelsEN = [4]string{"Applicable Articles", "Summary", "Legal Text", "Consequences and Recommendations"}
)

// legalTextMarkers decide whether a section is shown together with the raw articles
var legalTextMarkers = []string{"legal text", "Legal Text", "законов текст", "Законов текст"}

// Section is one labeled part of an answer. Index is 1..4 for a marker
// section and 0 for the unlabeled whole-answer fallback.
type Section struct {
	Index int    `json:"index"`
	Label string `json:"label,omitempty"`
	Body  string `json:"body"`
}

// SplitSections splits answer into its section bodies in source order.
// When no marker family matches, the trimmed answer is the only section.
func SplitSections(answer string) []string {
	sections := ParseSections(answer)
	bodies := make([]string, len(sections))
	for i, s := range sections {
		bodies[i] = s.Body
	}
	return bodies
}

// ParseSections is SplitSections with the section number and a localized label
func ParseSections(answer string) []Section {
	if family, ok := matchFamily(answer); ok {
		if sections := extractSections(answer, family); len(sections) > 0 {
			labels := sectionLabelsEN
			if LooksBulgarian(answer) {
				labels = sectionLabelsBG
			}
			for i := range sections {
				sections[i].Label = labels[sections[i].Index-1]
			}
			return sections
		}
	}
	return []Section{{Body: strings.TrimSpace(answer)}}
}

// ShowsArticles reports whether a section body still mentions the legal text
// heading, in which case the raw articles are displayed next to it.
func ShowsArticles(body string) bool {
	for _, marker := range legalTextMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}

func matchFamily(answer string) (markerFamily, bool) {
	for _, family := range markerFamilies {
		present := 0
		for _, marker := range family.markers {
			if strings.Contains(answer, marker) {
				present++
			}
		}
		if present >= minMarkersPresent {
			return family, true
		}
	}
	return markerFamily{}, false
}

func extractSections(answer string, family markerFamily) []Section {
	var positions [4]int
	for i, marker := range family.markers {
		positions[i] = strings.Index(answer, marker)
	}

	var sections []Section
	for i, marker := range family.markers {
		if positions[i] < 0 {
			continue
		}
		start := positions[i] + len(marker)
		end := len(answer)
		for j := i + 1; j < len(family.markers); j++ {
			if positions[j] < 0 {
				continue
			}
			// out-of-order markers: run to the end of the answer
			if positions[j] >= start {
				end = positions[j]
			}
			break
		}
		body := strings.TrimSpace(answer[start:end])
		if body == "" {
			continue
		}
		sections = append(sections, Section{Index: i + 1, Body: body})
	}
	return sections
}
