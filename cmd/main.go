package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-library/docs"
	"github.com/sbilibin2017/gw-library/internal/handlers"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/middlewares"
	"github.com/sbilibin2017/gw-library/internal/migrations"
	"github.com/sbilibin2017/gw-library/internal/repositories"
	"github.com/sbilibin2017/gw-library/internal/services"
	"github.com/sbilibin2017/gw-library/web"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-library API
// @version 1.0.0
// @description Library management service for users, books and loans
// @host localhost:3000
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, rateLimit, rateBurst,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, pgMigrate,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, rateLimit, rateBurst,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, pgMigrate,
		redisHost, redisPort, redisDB, redisPassword, redisExpSecond,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka and logging configuration.
// An empty REDIS_HOST or KAFKA_BROKERS turns that integration off,
// as does an APP_RATE_LIMIT of zero.
func parseConfig(path string) (
	appHost, appPort, logLevel string, rateLimit float64, rateBurst int,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, pgMigrate bool,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	if rateLimit, err = strconv.ParseFloat(getEnv("APP_RATE_LIMIT", "0"), 64); err != nil {
		return
	}
	if rateBurst, err = strconv.Atoi(getEnv("APP_RATE_BURST", "20")); err != nil {
		return
	}

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "postgres")
	pgPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	pgDB = getEnv("POSTGRES_DB", "library")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "10")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "5")); err != nil {
		return
	}
	if pgMigrate, err = strconv.ParseBool(getEnv("POSTGRES_MIGRATE", "false")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "library.loans")

	return
}

// run initializes the logger, database, optional Redis and Kafka, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string, rateLimit float64, rateBurst int,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, pgMigrate bool,
	redisHost string, redisPort, redisDB int, redisPassword string, redisExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	if pgMigrate {
		if err := migrations.Up(dsn); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect to PostgreSQL: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Connect to Redis
	var reportCache *repositories.ReportCacheRepository
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer rdb.Close()
		reportCache = repositories.NewReportCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)
	} else {
		log.Info("Redis not configured, report caching disabled")
	}

	// Kafka writer
	var kafkaWriter *kafka.Writer
	if len(kafkaBrokers) > 0 {
		kafkaWriter = newKafkaWriter(kafkaBrokers, kafkaTopic)
		defer kafkaWriter.Close()
	} else {
		log.Info("Kafka not configured, loan events disabled")
	}

	r := newRouter(log, db, reportCache, kafkaWriter, appHost, appPort, rateLimit, rateBurst)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter builds a writer that flushes every loan event on its own.
// WriteMessages blocks the loan request until the batch is flushed.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// reportCache and kafkaWriter may be nil.
func newRouter(
	log *zap.SugaredLogger,
	db *sqlx.DB,
	reportCache *repositories.ReportCacheRepository,
	kafkaWriter *kafka.Writer,
	appHost, appPort string,
	rateLimit float64, rateBurst int,
) http.Handler {
	// Initialize repositories
	loanReadRepo := repositories.NewLoanReadRepository(db)
	loanWriteRepo := repositories.NewLoanWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db)
	userReadRepo := repositories.NewUserReadRepository(db)

	// Nil pointers must reach the services as nil interfaces.
	var (
		cache       services.ReportCache
		invalidator services.ReportInvalidator
		events      services.KafkaWriter
	)
	if reportCache != nil {
		cache = reportCache
		invalidator = reportCache
	}
	if kafkaWriter != nil {
		events = kafkaWriter
	}

	// Initialize services
	loanService := services.NewLoanService(loanReadRepo, loanWriteRepo, events, invalidator)
	reportService := services.NewReportService(bookReadRepo, userReadRepo, cache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RateLimitMiddleware(rateLimit, rateBurst))

	r.Get("/", handlers.NewHelloHandler())

	r.Route("/api/v1", func(r chi.Router) {
		handlers.RegisterLoanRoutes(r, handlers.LoanRoutes{
			List:    handlers.NewListLoansHandler(loanService),
			Create:  handlers.NewCreateLoanHandler(loanService),
			Active:  handlers.NewListActiveLoansHandler(loanService),
			ByUser:  handlers.NewListUserLoansHandler(loanService),
			History: handlers.NewLoanHistoryHandler(loanService),
			Get:     handlers.NewGetLoanHandler(loanService),
			Update:  handlers.NewUpdateLoanHandler(loanService),
			Delete:  handlers.NewDeleteLoanHandler(loanService),
		})
		handlers.RegisterBookRoutes(r, handlers.NewMostLoanedBooksHandler(reportService))
		handlers.RegisterUserRoutes(r, handlers.NewUsersWithOverdueHandler(reportService))
	})

	r.Handle("/app/*", web.Handler("/app"))
	r.Get("/app", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/app/", http.StatusMovedPermanently)
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}
