package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind tags a conversation entry as a query or a response
type EntryKind string

const (
	EntryKindQuery    EntryKind = "query"
	EntryKindResponse EntryKind = "response"
)

// ConversationEntry is one item of the conversation log.
// Query entries use Text; response entries use Answer and Articles.
type ConversationEntry struct {
	ID        uuid.UUID `json:"id"`
	Kind      EntryKind `json:"kind"`
	Text      string    `json:"text,omitempty"`
	Answer    string    `json:"answer,omitempty"`
	Articles  []Article `json:"articles,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewQueryEntry creates a query entry
func NewQueryEntry(text string) ConversationEntry {
	return ConversationEntry{
		ID:        uuid.New(),
		Kind:      EntryKindQuery,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewResponseEntry creates a response entry from a backend payload
func NewResponseEntry(resp LegalResponse) ConversationEntry {
	return ConversationEntry{
		ID:        uuid.New(),
		Kind:      EntryKindResponse,
		Answer:    resp.Answer,
		Articles:  copyArticles(resp.Normalize().Articles),
		CreatedAt: time.Now(),
	}
}

// Clone returns a copy of e that shares no memory with it
func (e ConversationEntry) Clone() ConversationEntry {
	e.Articles = copyArticles(e.Articles)
	return e
}

// IsQuery reports whether the entry is a query
func (e ConversationEntry) IsQuery() bool {
	return e.Kind == EntryKindQuery
}

// IsResponse reports whether the entry is a response
func (e ConversationEntry) IsResponse() bool {
	return e.Kind == EntryKindResponse
}

// Response returns the payload of a response entry
func (e ConversationEntry) Response() LegalResponse {
	return LegalResponse{Answer: e.Answer, Articles: copyArticles(e.Articles)}
}

func copyArticles(articles []Article) []Article {
	if articles == nil {
		return nil
	}
	out := make([]Article, len(articles))
	copy(out, articles)
	return out
}
