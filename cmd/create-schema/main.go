package main

import (
	"context"
	"fmt"
	"log"

	"lexbg-assistant/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.LoadDatabase()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	// gen_random_uuid is built in from Postgres 13; older servers need pgcrypto
	_, err = pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS pgcrypto")
	if err != nil {
		log.Printf("Warning: Failed to create pgcrypto extension: %v", err)
	} else {
		log.Println("✓ pgcrypto extension enabled")
	}

	schemaSQL := `
CREATE TABLE IF NOT EXISTS query_logs (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    request_id UUID NOT NULL,
    query_text TEXT NOT NULL DEFAULT '',
    status VARCHAR(32) NOT NULL CHECK (status IN ('forwarded', 'backend_error')),
    http_status INTEGER NOT NULL,
    duration_ms BIGINT NOT NULL DEFAULT 0,
    error_message TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

	_, err = pool.Exec(ctx, schemaSQL)
	if err != nil {
		log.Fatalf("Failed to create query_logs table: %v", err)
	}
	log.Println("✓ Created query_logs table")

	indexes := []struct {
		name string
		sql  string
	}{
		{
			name: "Recent queries",
			sql:  "CREATE INDEX IF NOT EXISTS idx_query_logs_created_at ON query_logs(created_at DESC);",
		},
		{
			name: "Request ID lookup",
			sql:  "CREATE INDEX IF NOT EXISTS idx_query_logs_request_id ON query_logs(request_id);",
		},
		{
			name: "Backend failures",
			sql:  "CREATE INDEX IF NOT EXISTS idx_query_logs_backend_error ON query_logs(created_at DESC) WHERE status = 'backend_error';",
		},
	}

	for _, idx := range indexes {
		_, err = pool.Exec(ctx, idx.sql)
		if err != nil {
			log.Printf("Warning: Failed to create index %s: %v", idx.name, err)
		} else {
			log.Printf("✓ Created index: %s", idx.name)
		}
	}

	fmt.Println("\n✅ Database schema created successfully!")
	fmt.Println("   Table: query_logs")
	fmt.Printf("   Indexes: %d\n", len(indexes))
}
