package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Weaseltime420/Vote-Bot/cliparse"
	"github.com/Weaseltime420/Vote-Bot/db"
	"github.com/Weaseltime420/Vote-Bot/router"
)

func main() {
	var err error

	// Load .env if present (secrets for local development)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the storage engine
	dbConn, err := openDatabase(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openDatabase(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "sqlite":
		return sql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	}
	return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}

// sqliteDSN normalizes a plain file path into a DSN with the pragmas the
// bot needs: time.Time round-tripping, foreign keys, and a busy timeout so
// concurrent commands wait for the single writer instead of failing.
func sqliteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_time_format=sqlite&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}
