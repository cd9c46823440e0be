package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"newsradar/internal/config"
	jsonRepo "newsradar/internal/infra/adapter/persistence/jsonfile"
	pgRepo "newsradar/internal/infra/adapter/persistence/postgres"
	"newsradar/internal/infra/db"
	"newsradar/internal/infra/headlines"
	"newsradar/internal/infra/images"
	"newsradar/internal/infra/notifier"
	"newsradar/internal/infra/writer"
	"newsradar/internal/observability/logging"
	"newsradar/internal/observability/tracing"
	"newsradar/internal/repository"

	artUC "newsradar/internal/usecase/article"
	genUC "newsradar/internal/usecase/generate"

	hhttp "newsradar/internal/handler/http"
	harticle "newsradar/internal/handler/http/article"
	hauth "newsradar/internal/handler/http/auth"
	hgenerate "newsradar/internal/handler/http/generate"
	"newsradar/internal/handler/http/middleware"
	"newsradar/internal/handler/http/requestid"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	jwtSecret := loadJWTSecret(logger)
	cronSecret := loadCronSecret(logger)

	provider, err := hauth.NewEnvProvider()
	if err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}

	repo, database := initStorage(logger)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	site, err := config.LoadSiteConfig()
	if err != nil {
		logger.Error("failed to load site configuration", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	handler := setupServer(logger, repo, database, site, provider, jwtSecret, cronSecret, version)

	runServer(logger, handler, version)
}

// loadJWTSecret reads and validates JWT_SECRET. The server refuses to start
// with a short or well-known value.
func loadJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value",
				slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// loadCronSecret reads CRON_SECRET, which guards the batch trigger endpoint.
func loadCronSecret(logger *slog.Logger) string {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" {
		logger.Error("CRON_SECRET must be set")
		os.Exit(1)
	}
	return secret
}

// initStorage selects the article store from STORAGE_BACKEND. The returned
// *sql.DB is nil for the flat-file backend.
func initStorage(logger *slog.Logger) (repository.ArticleRepository, *sql.DB) {
	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "jsonfile"
	}

	switch backend {
	case "postgres":
		database := db.Open()
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("storage initialized", slog.String("backend", "postgres"))
		return pgRepo.NewArticleRepo(database), database

	case "jsonfile":
		path := os.Getenv("ARTICLES_FILE")
		if path == "" {
			path = "data/articles.json"
		}
		repo, err := jsonRepo.NewArticleRepo(path)
		if err != nil {
			logger.Error("failed to initialize json store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("storage initialized",
			slog.String("backend", "jsonfile"),
			slog.String("path", path))
		return repo, nil

	default:
		logger.Error("unknown STORAGE_BACKEND", slog.String("backend", backend))
		os.Exit(1)
		return nil, nil
	}
}

// initWriter selects the content generation backend from WRITER_TYPE.
func initWriter(logger *slog.Logger) writer.Writer {
	switch backend := os.Getenv("WRITER_TYPE"); backend {
	case "claude", "":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			logger.Error("ANTHROPIC_API_KEY must be set for WRITER_TYPE=claude")
			os.Exit(1)
		}
		return writer.NewClaude(apiKey)
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			logger.Error("OPENAI_API_KEY must be set for WRITER_TYPE=openai")
			os.Exit(1)
		}
		return writer.NewOpenAI(apiKey)
	case "noop":
		logger.Warn("using noop writer, generated articles will contain stub content")
		return writer.NewNoop()
	default:
		logger.Error("unknown WRITER_TYPE", slog.String("writer_type", backend))
		os.Exit(1)
		return nil
	}
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires use cases, routes, and the middleware chain.
func setupServer(
	logger *slog.Logger,
	repo repository.ArticleRepository,
	database *sql.DB,
	site *config.SiteConfig,
	provider hauth.Provider,
	jwtSecret []byte,
	cronSecret string,
	version string,
) http.Handler {
	w := initWriter(logger)
	artSvc := &artUC.Service{Repo: repo, Writer: w}
	genSvc := genUC.NewService(
		repo,
		w,
		headlines.NewClient(os.Getenv("NEWS_API_KEY")),
		images.NewClient(os.Getenv("PEXELS_API_KEY")),
		notifier.FromEnv(),
		site,
	)

	storageBackend := "jsonfile"
	if database != nil {
		storageBackend = "postgres"
	}

	// Auth token issuance is a brute-force target; keep its budget small.
	authLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)

	mux := http.NewServeMux()
	mux.Handle("POST /auth/token", authLimiter.Limit(hauth.TokenHandler(provider, jwtSecret)))

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, StorageBackend: storageBackend, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	admin := hauth.RequireAdmin(jwtSecret)
	harticle.Register(mux, artSvc, admin)
	hgenerate.Register(mux, genSvc, cronSecret, admin)

	return applyMiddleware(logger, mux)
}

// applyMiddleware builds the chain, outermost first: CORS → request ID →
// tracing → recovery → logging → body limit → input validation → metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	corsConfig.Logger = logger
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(*corsConfig)(chain)
	return chain
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
