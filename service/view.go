package service

import "lexbg-assistant/models"

// SectionView is one rendered card of a response
type SectionView struct {
	Section
	// Articles is set only when the section body passes ShowsArticles
	Articles []models.Article
}

// ResponseView is what a renderer needs to draw one response entry
type ResponseView struct {
	Sections  []SectionView
	Bulgarian bool
}

// BuildResponseView parses the stored answer again and attaches the articles
// to every section that still mentions the legal text heading.
func BuildResponseView(resp models.LegalResponse) ResponseView {
	parsed := ParseSections(resp.Answer)
	view := ResponseView{
		Sections:  make([]SectionView, 0, len(parsed)),
		Bulgarian: LooksBulgarian(resp.Answer),
	}
	for _, section := range parsed {
		sv := SectionView{Section: section}
		if len(resp.Articles) > 0 && ShowsArticles(section.Body) {
			sv.Articles = resp.Articles
		}
		view.Sections = append(view.Sections, sv)
	}
	return view
}
