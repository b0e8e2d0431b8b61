package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"lexbg-assistant/config"
	"lexbg-assistant/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

const maxQueryWidth = 60

func main() {
	cfg := config.LoadDatabase()

	limit := flag.Int("limit", cfg.Limit, "Number of recent queries to show")
	flag.Parse()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := repository.NewQueryLogRepository(pool)
	entries, err := repo.ListRecent(context.Background(), *limit)
	if err != nil {
		log.Fatalf("Failed to list query logs: %v", err)
	}

	if len(entries) == 0 {
		fmt.Println("No queries recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tREQUEST\tSTATUS\tHTTP\tMS\tQUERY")
	for _, entry := range entries {
		status := string(entry.Status)
		if entry.ErrorMessage != nil {
			log.Printf("%s: %s", entry.RequestID, *entry.ErrorMessage)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.RequestID.String()[:8],
			status,
			entry.HTTPStatus,
			entry.DurationMS,
			truncate(entry.QueryText, maxQueryWidth),
		)
	}
	w.Flush()
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
