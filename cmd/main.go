package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/margdarshak/career-api/internal/config"
	"github.com/margdarshak/career-api/internal/facades"
	"github.com/margdarshak/career-api/internal/handlers"
	"github.com/margdarshak/career-api/internal/jwt"
	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/middlewares"
	"github.com/margdarshak/career-api/internal/migrations"
	"github.com/margdarshak/career-api/internal/publishers"
	"github.com/margdarshak/career-api/internal/repositories"
	"github.com/margdarshak/career-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/margdarshak/career-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const shutdownTimeout = 10 * time.Second

// @title Career Guidance API
// @version 1.0.0
// @description Skill quizzes, career advice, a search-grounded assistant and resume reviews backed by Gemini
// @host localhost:3001
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// api holds the services behind each route.
type api struct {
	signup   handlers.Registerer
	signin   handlers.Loginer
	generate handlers.QuizGenerator
	evaluate handlers.QuizEvaluator
	results  handlers.QuizResultsLister
	advice   handlers.CareerAdvisor
	chat     handlers.Chatter
	resume   handlers.ResumeAnalyzer
	health   map[string]handlers.Pinger
}

// newRouter mounts the API under /api/v1. The quiz, path, chat and resume
// routes require a token only when app.AuthRequired is set.
func newRouter(app config.AppConfig, tokens middlewares.Tokener, a api) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(app.CORSAllowedOrigins))

	health := handlers.NewHealthHandler(a.health)
	r.Get("/health", health)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	guard := middlewares.OptionalAuthMiddleware(tokens)
	if app.AuthRequired {
		guard = middlewares.AuthMiddleware(tokens)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)

		// Public routes
		r.Post("/user/signup", handlers.NewSignupHandler(a.signup))
		r.Post("/user/signin", handlers.NewSigninHandler(a.signin))

		// Protected routes with JWT middleware
		r.With(middlewares.AuthMiddleware(tokens)).Get("/user/me", handlers.NewMeHandler())

		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/quiz/generate", handlers.NewQuizGenerateHandler(a.generate))
			r.Post("/quiz/evaluate", handlers.NewQuizEvaluateHandler(a.evaluate))
			r.Get("/quiz/results", handlers.NewQuizResultsHandler(a.results))
			r.Post("/path/careeradvice", handlers.NewCareerAdviceHandler(a.advice))
			r.Post("/chat", handlers.NewChatHandler(a.chat))
			r.Post("/resume/analyze", handlers.NewResumeAnalyzeHandler(a.resume))
		})
	})

	return r
}

// run initializes the logger, database, Redis, upstream clients and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.LogFormat); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL and apply migrations
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.URL)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Run(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Upstream clients
	gemini, err := facades.NewGeminiFacade(ctx,
		cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL,
		facades.WithGeminiTimeout(cfg.Gemini.Timeout),
		facades.WithGeminiMaxRetries(cfg.Gemini.MaxRetries),
	)
	if err != nil {
		return fmt.Errorf("gemini client: %w", err)
	}
	if !gemini.Configured() {
		logger.Log.Warn("GEMINI_API_KEY is not set, generation requests will fail")
	}

	search := facades.NewSearchFacade(cfg.Search.URL, cfg.Search.APIKey, cfg.Search.Results, cfg.Search.Timeout)
	if !search.Configured() {
		logger.Log.Warn("SEARCH_API_KEY is not set, chat requests will fail")
	}

	var archive services.ResumeArchiver
	if cfg.Storage.Bucket != "" {
		s3Client, err := facades.NewS3Client(ctx,
			cfg.Storage.Region, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
		if err != nil {
			return fmt.Errorf("s3 client: %w", err)
		}
		archive = facades.NewResumeArchiveFacade(s3Client, cfg.Storage.Bucket)
		logger.Log.Infof("Archiving resumes to bucket %s", cfg.Storage.Bucket)
	}

	events, err := publishers.New(cfg.Events)
	if err != nil {
		return fmt.Errorf("event publisher: %w", err)
	}
	defer events.Close()

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Expiration),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	attemptRepo := repositories.NewQuizAttemptCacheRepository(rdb, cfg.Redis.AttemptTTL)
	resultWriteRepo := repositories.NewQuizResultWriteRepository(db)
	resultReadRepo := repositories.NewQuizResultReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	quizService := services.NewQuizService(gemini, attemptRepo, resultWriteRepo, resultReadRepo, events)
	adviceService := services.NewAdviceService(gemini)
	chatService := services.NewChatService(gemini, search)
	resumeService := services.NewResumeService(gemini, archive)

	r := newRouter(cfg.App, tokens, api{
		signup:   authService,
		signin:   authService,
		generate: quizService,
		evaluate: quizService,
		results:  quizService,
		advice:   adviceService,
		chat:     chatService,
		resume:   resumeService,
		health: map[string]handlers.Pinger{
			"postgres": db,
			"redis": handlers.PingerFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}),
		},
	})

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
