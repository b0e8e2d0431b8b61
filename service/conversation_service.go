package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"lexbg-assistant/models"
)

var (
	ErrEmptyQuery         = errors.New("query is empty")
	ErrSubmissionInFlight = errors.New("a query is already in flight")
	ErrSearcherNotSet     = errors.New("searcher not set")
)

// Searcher answers one legal query. The API client never returns an error;
// other implementations may, and their failures are only logged.
type Searcher interface {
	Search(ctx context.Context, query string) (models.LegalResponse, error)
}

// SearcherFunc adapts a function to the Searcher interface
type SearcherFunc func(ctx context.Context, query string) (models.LegalResponse, error)

// Search calls f(ctx, query)
func (f SearcherFunc) Search(ctx context.Context, query string) (models.LegalResponse, error) {
	return f(ctx, query)
}

// ConversationService owns the append-only conversation log of one session
type ConversationService struct {
	searcher Searcher
	onChange func()

	mu       sync.Mutex
	entries  []models.ConversationEntry
	inFlight bool
}

// ConversationServiceOption is a functional option for ConversationService
type ConversationServiceOption func(*ConversationService)

// WithSearcher sets the backend used to answer queries
func WithSearcher(searcher Searcher) ConversationServiceOption {
	return func(s *ConversationService) {
		s.searcher = searcher
	}
}

// WithOnChange sets a callback run after every append and after the
// in-flight guard is released. It is called without the lock held.
func WithOnChange(fn func()) ConversationServiceOption {
	return func(s *ConversationService) {
		s.onChange = fn
	}
}

// NewConversationService creates a new conversation service
func NewConversationService(opts ...ConversationServiceOption) *ConversationService {
	s := &ConversationService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit appends a query entry, waits for the searcher and appends exactly
// one response entry with whatever it returned.
//
// Only one submission may be in flight; a second call returns
// ErrSubmissionInFlight without touching the log. If the searcher fails or
// panics, the failure is logged, no response is appended and Submit still
// returns nil, leaving the query unanswered.
func (s *ConversationService) Submit(ctx context.Context, text string) error {
	query := strings.TrimSpace(text)
	if query == "" {
		return ErrEmptyQuery
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if s.searcher == nil {
		s.mu.Unlock()
		return ErrSearcherNotSet
	}
	s.inFlight = true
	s.entries = append(s.entries, models.NewQueryEntry(query))
	s.mu.Unlock()
	s.notify()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error: query submission failed: %v", r)
		}
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
		s.notify()
	}()

	resp, err := s.searcher.Search(ctx, query)
	if err != nil {
		log.Printf("Error: query submission failed: %v", err)
		return nil
	}

	s.mu.Lock()
	s.entries = append(s.entries, models.NewResponseEntry(resp))
	s.mu.Unlock()
	s.notify()

	return nil
}

// Entries returns a snapshot of the log in chronological order
func (s *ConversationService) Entries() []models.ConversationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.ConversationEntry, len(s.entries))
	for i, entry := range s.entries {
		entries[i] = entry.Clone()
	}
	return entries
}

// Len returns the number of entries in the log
func (s *ConversationService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// InFlight reports whether a submission is still waiting for the searcher
func (s *ConversationService) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// UnansweredQueries returns the query entries that were never followed by a
// response. The query of a submission that is still in flight is not counted.
func (s *ConversationService) UnansweredQueries() []models.ConversationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var unanswered []models.ConversationEntry
	for i, entry := range s.entries {
		if !entry.IsQuery() {
			continue
		}
		if i+1 < len(s.entries) {
			if !s.entries[i+1].IsResponse() {
				unanswered = append(unanswered, entry.Clone())
			}
			continue
		}
		if !s.inFlight {
			unanswered = append(unanswered, entry.Clone())
		}
	}
	return unanswered
}

// LastQuery returns the text of the most recent query, or "" if none
func (s *ConversationService) LastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].IsQuery() {
			return s.entries[i].Text
		}
	}
	return ""
}

func (s *ConversationService) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
