// Package client calls the legal assistant backend (directly, or through the
// proxy) and turns every failure into a fallback answer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"lexbg-assistant/models"
	"lexbg-assistant/service"
)

const (
	// DevelopmentAPIBase is the backend's own address used by development builds
	DevelopmentAPIBase = "http://localhost:5001/api"
	// ProductionAPIPath is the proxy path used by production builds
	ProductionAPIPath = "/api"
	// DefaultProxyURL is where production builds expect the proxy
	DefaultProxyURL = "http://localhost:3000"
)

// Outcome tells apart the cases that look alike on the wire
type Outcome string

const (
	OutcomeAnswered           Outcome = "answered"
	OutcomeNoInformation      Outcome = "no_information"
	OutcomeBackendUnavailable Outcome = "backend_unavailable"
)

// Result is a backend answer plus how it was obtained
type Result struct {
	Response models.LegalResponse
	Outcome  Outcome
	// Err is the cause of OutcomeBackendUnavailable
	Err error
}

// Client issues one POST {apiBase}/query per user query
type Client struct {
	apiBase    string
	httpClient *http.Client
}

// Option is a functional option for Client
type Option func(*Client)

// WithAPIBase overrides the build-time API base
func WithAPIBase(apiBase string) Option {
	return func(c *Client) {
		if apiBase != "" {
			c.apiBase = apiBase
		}
	}
}

// WithHTTPClient sets the HTTP client. The default has no timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new API client
func New(opts ...Option) *Client {
	c := &Client{
		apiBase:    DefaultAPIBase(DefaultProxyURL),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultAPIBase returns the API base selected at build time. Production
// builds resolve ProductionAPIPath against proxyURL.
func DefaultAPIBase(proxyURL string) string {
	if !production {
		return DevelopmentAPIBase
	}
	if proxyURL == "" {
		proxyURL = DefaultProxyURL
	}
	return strings.TrimRight(proxyURL, "/") + ProductionAPIPath
}

// APIBase returns the base URL the client sends queries to
func (c *Client) APIBase() string {
	return c.apiBase
}

// SearchLegalInfo asks the backend about query. It never fails: any error
// yields the fallback response, which callers can only recognise by its text.
func (c *Client) SearchLegalInfo(ctx context.Context, query string) models.LegalResponse {
	return c.Lookup(ctx, query).Response
}

// Search implements service.Searcher; the error is always nil
func (c *Client) Search(ctx context.Context, query string) (models.LegalResponse, error) {
	return c.SearchLegalInfo(ctx, query), nil
}

// Lookup is SearchLegalInfo with an explicit outcome
func (c *Client) Lookup(ctx context.Context, query string) Result {
	resp, err := c.post(ctx, query)
	if err != nil {
		log.Printf("Warning: legal query failed, using fallback answer: %v", err)
		return Result{
			Response: Fallback(query),
			Outcome:  OutcomeBackendUnavailable,
			Err:      err,
		}
	}

	outcome := OutcomeAnswered
	if len(resp.Articles) == 0 {
		outcome = OutcomeNoInformation
	}
	return Result{Response: resp, Outcome: outcome}
}

func (c *Client) post(ctx context.Context, query string) (models.LegalResponse, error) {
	jsonData, err := json.Marshal(models.QueryRequest{Query: query})
	if err != nil {
		return models.LegalResponse{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.apiBase, "/") + "/query"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return models.LegalResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.LegalResponse{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.LegalResponse{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.LegalResponse{}, fmt.Errorf("API error: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var legalResp models.LegalResponse
	if err := json.Unmarshal(bodyBytes, &legalResp); err != nil {
		return models.LegalResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return legalResp.Normalize(), nil
}

// Fallback is the response returned in place of an error
func Fallback(query string) models.LegalResponse {
	return models.LegalResponse{
		Answer:   service.CouldNotProcessMessage(query),
		Articles: []models.Article{},
	}
}

// IsFallback reports whether resp is one of the fallback responses
func IsFallback(resp models.LegalResponse) bool {
	if len(resp.Articles) > 0 {
		return false
	}
	switch resp.Answer {
	case service.CouldNotProcessBG, service.CouldNotProcessEN, service.UnavailableBG, service.UnavailableEN:
		return true
	}
	return false
}
