package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"lexbg-assistant/models"
	"lexbg-assistant/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the proxy's request ID to the client and the backend
const RequestIDHeader = "X-Request-ID"

const queryLogTimeout = 5 * time.Second

// QueryLogger records proxied queries. *repository.QueryLogRepository
// implements it.
type QueryLogger interface {
	Create(ctx context.Context, entry *models.QueryLog) error
}

// QueryHandler forwards /api/query to the backend
type QueryHandler struct {
	backendURL string
	httpClient *http.Client
	queryLog   QueryLogger
}

// NewQueryHandler creates a new query handler. queryLog may be nil.
func NewQueryHandler(backendURL string, httpClient *http.Client, queryLog QueryLogger) *QueryHandler {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &QueryHandler{
		backendURL: strings.TrimRight(backendURL, "/"),
		httpClient: httpClient,
		queryLog:   queryLog,
	}
}

// ProxyQuery handles POST /api/query
func (h *QueryHandler) ProxyQuery(c *gin.Context) {
	start := time.Now()
	requestID := uuid.New()
	c.Header(RequestIDHeader, requestID.String())

	body, err := io.ReadAll(c.Request.Body)
	queryText := peekQuery(body)
	if err != nil {
		h.fail(c, requestID, queryText, start, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	respBody, contentType, status, err := h.forward(c.Request.Context(), requestID, body)
	if err != nil {
		h.fail(c, requestID, queryText, start, err)
		return
	}

	c.Data(http.StatusOK, contentType, respBody)
	h.record(c.Request.Context(), &models.QueryLog{
		RequestID:  requestID,
		QueryText:  queryText,
		Status:     models.QueryStatusForwarded,
		HTTPStatus: status,
		DurationMS: time.Since(start).Milliseconds(),
	})
}

// forward relays body verbatim and returns the backend's body and 2xx status
func (h *QueryHandler) forward(ctx context.Context, requestID uuid.UUID, body []byte) ([]byte, string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.backendURL+"/api/query", bytes.NewReader(body))
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID.String())

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", 0, fmt.Errorf("backend error: %d - %s", resp.StatusCode, string(respBody))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}

	return respBody, contentType, resp.StatusCode, nil
}

func (h *QueryHandler) fail(c *gin.Context, requestID uuid.UUID, queryText string, start time.Time, cause error) {
	log.Printf("Error: proxy request %s failed: %v", requestID, cause)

	c.JSON(http.StatusInternalServerError, models.LegalResponse{
		Answer:   service.UnavailableMessage(queryText),
		Articles: []models.Article{},
	})

	message := cause.Error()
	h.record(c.Request.Context(), &models.QueryLog{
		RequestID:    requestID,
		QueryText:    queryText,
		Status:       models.QueryStatusBackendError,
		HTTPStatus:   http.StatusInternalServerError,
		DurationMS:   time.Since(start).Milliseconds(),
		ErrorMessage: &message,
	})
}

// record writes the audit row once the response is out; failures never
// reach the client
func (h *QueryHandler) record(ctx context.Context, entry *models.QueryLog) {
	if h.queryLog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), queryLogTimeout)
	defer cancel()

	if err := h.queryLog.Create(ctx, entry); err != nil {
		log.Printf("Warning: Failed to record query log for request %s: %v", entry.RequestID, err)
	}
}

// peekQuery extracts the query text for localization and logging only; the
// body is forwarded untouched either way
func peekQuery(body []byte) string {
	var req models.QueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return ""
	}
	return req.Query
}
