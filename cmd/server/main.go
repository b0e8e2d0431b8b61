package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexbg-assistant/config"
	"lexbg-assistant/handlers"
	"lexbg-assistant/repository"
	"lexbg-assistant/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("LexBG proxy server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  PORT                  Server port (default: %s)\n", config.DefaultPort)
		fmt.Printf("  BACKEND_URL           Legal assistant backend (default: %s)\n", config.DefaultBackendURL)
		fmt.Printf("  STORAGE_TYPE          Client bundle storage: local or s3 (default: local)\n")
		fmt.Printf("  STORAGE_LOCAL_PATH    Client bundle directory (default: %s)\n", storage.DefaultLocalPath)
		fmt.Printf("  DATABASE_URL          Postgres for the query audit log (optional)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("LexBG proxy server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize storage
	bundleStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	// The audit log is optional
	var queryLog handlers.QueryLogger
	if cfg.DatabaseURL != "" {
		db, err := initPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to initialize Postgres:", err)
		}
		defer db.Close()
		queryLog = repository.NewQueryLogRepository(db)
	} else {
		log.Println("DATABASE_URL not set, query audit log disabled")
	}

	// Initialize handlers
	queryHandler := handlers.NewQueryHandler(cfg.BackendURL, &http.Client{}, queryLog)
	bundleHandler := handlers.NewBundleHandler(bundleStorage)

	router := handlers.NewRouter(queryHandler, bundleHandler)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s, forwarding /api/query to %s", cfg.Port, cfg.BackendURL)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-sigChan
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

func initPostgres(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("Postgres connection established, query audit log enabled")
	return pool, nil
}
