package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexbg-assistant/models"
	"lexbg-assistant/service"

	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestLookup_Answered(t *testing.T) {
	var gotQuery string
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/query", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.QueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotQuery = req.Query

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"answer":"SECTION 1: Art. 71","articles":[{"number":"71","title":"Probation","content":"..."}]}`)
	})

	c := New(WithAPIBase(backend.URL + "/api"))
	result := c.Lookup(context.Background(), "What is the probation period?")

	require.Equal(t, "What is the probation period?", gotQuery)
	require.Equal(t, OutcomeAnswered, result.Outcome)
	require.NoError(t, result.Err)
	require.Equal(t, "SECTION 1: Art. 71", result.Response.Answer)
	require.Len(t, result.Response.Articles, 1)
	require.Equal(t, "71", result.Response.Articles[0].Number)
	require.False(t, IsFallback(result.Response))
}

func TestLookup_NoInformation(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"answer":"Nothing relevant was found.","articles":null}`)
	})

	result := New(WithAPIBase(backend.URL)).Lookup(context.Background(), "question")

	require.Equal(t, OutcomeNoInformation, result.Outcome)
	require.NotNil(t, result.Response.Articles)
	require.Empty(t, result.Response.Articles)
}

func TestLookup_ServerErrorFallsBack(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"answer":"The legal assistant service is currently unavailable.","articles":[]}`)
	})

	c := New(WithAPIBase(backend.URL))

	tests := []struct {
		query string
		want  string
	}{
		{"What is the probation period?", service.CouldNotProcessEN},
		{"Какъв е срокът на изпитване?", service.CouldNotProcessBG},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			result := c.Lookup(context.Background(), tc.query)
			require.Equal(t, OutcomeBackendUnavailable, result.Outcome)
			require.Error(t, result.Err)
			require.Equal(t, tc.want, result.Response.Answer)
			require.Empty(t, result.Response.Articles)
			require.True(t, IsFallback(result.Response))
		})
	}
}

func TestLookup_MalformedBodyFallsBack(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	result := New(WithAPIBase(backend.URL)).Lookup(context.Background(), "question")

	require.Equal(t, OutcomeBackendUnavailable, result.Outcome)
	require.Equal(t, service.CouldNotProcessEN, result.Response.Answer)
}

func TestSearch_UnreachableBackend(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	url := backend.URL
	backend.Close()

	c := New(WithAPIBase(url + "/api"))

	resp, err := c.Search(context.Background(), "Какво?")
	require.NoError(t, err)
	require.Equal(t, service.CouldNotProcessBG, resp.Answer)
	require.NotNil(t, resp.Articles)
	require.Empty(t, resp.Articles)

	require.Equal(t, resp, c.SearchLegalInfo(context.Background(), "Какво?"))
}

func TestIsFallback(t *testing.T) {
	require.True(t, IsFallback(models.LegalResponse{Answer: service.UnavailableEN}))
	require.True(t, IsFallback(models.LegalResponse{Answer: service.UnavailableBG, Articles: []models.Article{}}))
	require.False(t, IsFallback(models.LegalResponse{Answer: "a real answer"}))
	require.False(t, IsFallback(models.LegalResponse{
		Answer:   service.CouldNotProcessEN,
		Articles: []models.Article{{Number: "1"}},
	}))
}

func TestNew_Defaults(t *testing.T) {
	c := New()
	require.Equal(t, DefaultAPIBase(DefaultProxyURL), c.APIBase())
	require.Zero(t, c.httpClient.Timeout)

	require.Equal(t, DefaultAPIBase(DefaultProxyURL), New(WithAPIBase("")).APIBase())
	require.Equal(t, "http://example.test/api", New(WithAPIBase("http://example.test/api")).APIBase())
}

func TestDefaultAPIBase(t *testing.T) {
	if production {
		require.Equal(t, "http://proxy.test/api", DefaultAPIBase("http://proxy.test/"))
		require.Equal(t, DefaultProxyURL+ProductionAPIPath, DefaultAPIBase(""))
		return
	}
	require.Equal(t, DevelopmentAPIBase, DefaultAPIBase("http://proxy.test"))
}
