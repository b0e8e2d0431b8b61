package repository

import (
	"context"
	"fmt"

	"lexbg-assistant/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryLogRepository handles database operations for the query audit log
type QueryLogRepository struct {
	db *pgxpool.Pool
}

// NewQueryLogRepository creates a new query log repository
func NewQueryLogRepository(db *pgxpool.Pool) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

// Create inserts a query log row
func (r *QueryLogRepository) Create(ctx context.Context, entry *models.QueryLog) error {
	query := `
		INSERT INTO query_logs (
			request_id, query_text, status, http_status, duration_ms, error_message
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		entry.RequestID,
		entry.QueryText,
		entry.Status,
		entry.HTTPStatus,
		entry.DurationMS,
		entry.ErrorMessage,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert query log: %w", err)
	}

	return nil
}

// ListRecent retrieves the most recent query log rows, newest first
func (r *QueryLogRepository) ListRecent(ctx context.Context, limit int) ([]*models.QueryLog, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, request_id, query_text, status, http_status, duration_ms,
			error_message, created_at
		FROM query_logs
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query query logs: %w", err)
	}
	defer rows.Close()

	var entries []*models.QueryLog
	for rows.Next() {
		entry := &models.QueryLog{}
		err := rows.Scan(
			&entry.ID,
			&entry.RequestID,
			&entry.QueryText,
			&entry.Status,
			&entry.HTTPStatus,
			&entry.DurationMS,
			&entry.ErrorMessage,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating query logs: %w", err)
	}

	return entries, nil
}
