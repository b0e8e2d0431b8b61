package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryLogStatus represents the outcome of a proxied query
type QueryLogStatus string

const (
	QueryStatusForwarded    QueryLogStatus = "forwarded"
	QueryStatusBackendError QueryLogStatus = "backend_error"
)

// QueryLog represents one proxied /api/query request
type QueryLog struct {
	ID           uuid.UUID      `json:"id"`
	RequestID    uuid.UUID      `json:"request_id"`
	QueryText    string         `json:"query_text"`
	Status       QueryLogStatus `json:"status"`
	HTTPStatus   int            `json:"http_status"`
	DurationMS   int64          `json:"duration_ms"`
	ErrorMessage *string        `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
