package service

import (
	"testing"

	"lexbg-assistant/models"

	"github.com/stretchr/testify/require"
)

func TestBuildResponseView_ProbationAnswer(t *testing.T) {
	resp := models.LegalResponse{
		Answer: "SECTION 1: Art. 70 and Art. 71 of the Labor Code\n" +
			"SECTION 2: A probation period may be agreed for up to six months.\n" +
			"SECTION 3: Legal Text: Art. 70 (1) When the work requires ...\n" +
			"SECTION 4: Put the probation clause in the contract.",
		Articles: []models.Article{
			{Number: "70", Title: "Probation contract", Content: "When the work requires ..."},
			{Number: "71", Title: "Termination", Content: "During the probation period ..."},
		},
	}

	view := BuildResponseView(resp)

	require.False(t, view.Bulgarian)
	require.Len(t, view.Sections, 4)
	require.Equal(t, "Applicable Articles", view.Sections[0].Label)
	require.Empty(t, view.Sections[0].Articles)
	require.Empty(t, view.Sections[1].Articles)
	require.Equal(t, resp.Articles, view.Sections[2].Articles)
	require.Empty(t, view.Sections[3].Articles)
}

func TestBuildResponseView_BulgarianWithoutArticles(t *testing.T) {
	resp := models.LegalResponse{
		Answer: "СЕКЦИЯ 1: чл. 71\nСЕКЦИЯ 2: обобщение\nСЕКЦИЯ 3: Законов текст: ...\nСЕКЦИЯ 4: препоръка",
	}

	view := BuildResponseView(resp)

	require.True(t, view.Bulgarian)
	require.Len(t, view.Sections, 4)
	require.Equal(t, "Последици и препоръки", view.Sections[3].Label)
	for _, section := range view.Sections {
		require.Empty(t, section.Articles)
	}
}

func TestBuildResponseView_PlainAnswer(t *testing.T) {
	resp := models.LegalResponse{
		Answer:   "The legal text is attached below.",
		Articles: []models.Article{{Number: "1", Content: "x"}},
	}

	view := BuildResponseView(resp)

	require.Len(t, view.Sections, 1)
	require.Equal(t, "The legal text is attached below.", view.Sections[0].Body)
	require.Len(t, view.Sections[0].Articles, 1)
}
