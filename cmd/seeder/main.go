package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/migrations"
	"github.com/sbilibin2017/gw-library/internal/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath, dataDir := parseFlags()

	dsn, logLevel, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), dsn, logLevel, dataDir); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

// parseFlags returns the config file path and the directory holding the CSV files.
func parseFlags() (configPath, dataDir string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	d := flag.String("d", "data", "Directory with users.csv, books.csv and library-loans.csv")
	flag.Parse()
	return *c, *d
}

// parseConfig loads the PostgreSQL settings shared with the API server.
func parseConfig(path string) (dsn, logLevel string, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	logLevel = getEnv("APP_LOG_LEVEL", "info")

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return "", "", err
	}
	dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "postgres"),
		getEnv("POSTGRES_PASSWORD", "postgres"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "library"),
	)
	return dsn, logLevel, nil
}

// run migrates the schema and loads every CSV file from dataDir.
func run(ctx context.Context, dsn, logLevel, dataDir string) error {
	if err := logger.Initialize(logLevel); err != nil {
		return err
	}
	defer logger.Log.Sync()

	if err := migrations.Up(dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer db.Close()
	logger.Log.Info("Connection to the database established")

	if err := seeders.New(db, os.DirFS(dataDir)).Run(ctx); err != nil {
		return err
	}
	logger.Log.Info("Seeders loaded successfully")
	return nil
}
