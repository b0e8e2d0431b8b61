package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexbg-assistant/models"
	"lexbg-assistant/service"

	"github.com/stretchr/testify/require"
)

func TestProbationQuestionEndToEnd(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query != "What is the probation period?" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LegalResponse{
			Answer: "SECTION 1: Art. 70 and Art. 71 of the Labor Code\n" +
				"SECTION 2: Probation may be agreed for up to six months.\n" +
				"SECTION 3: Legal Text: Art. 70 (1) When the work requires ...\n" +
				"SECTION 4: Put the probation clause in the contract.",
			Articles: []models.Article{
				{Number: "70", Title: "Probation contract", Content: "When the work requires ..."},
				{Number: "71", Title: "Termination during probation", Content: "During the probation period ..."},
			},
		})
	}))
	defer backend.Close()

	conv := service.NewConversationService(service.WithSearcher(New(WithAPIBase(backend.URL + "/api"))))

	require.NoError(t, conv.Submit(context.Background(), "What is the probation period?"))

	entries := conv.Entries()
	require.Len(t, entries, 2)
	require.True(t, entries[0].IsQuery())
	require.Equal(t, "What is the probation period?", entries[0].Text)
	require.True(t, entries[1].IsResponse())
	require.Len(t, entries[1].Articles, 2)
	require.Empty(t, conv.UnansweredQueries())

	view := service.BuildResponseView(entries[1].Response())
	require.False(t, view.Bulgarian)
	require.Len(t, view.Sections, 4)
	require.Equal(t, "Probation may be agreed for up to six months.", view.Sections[1].Body)
	for i, section := range view.Sections {
		require.Equal(t, i+1, section.Index)
		if i == 2 {
			require.Len(t, section.Articles, 2, "legal text section carries the articles")
			require.Equal(t, "70", section.Articles[0].Number)
			continue
		}
		require.Empty(t, section.Articles, "section %d", section.Index)
	}
}
