package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"newsradar/internal/config"
	"newsradar/internal/handler/http/respond"
	jsonRepo "newsradar/internal/infra/adapter/persistence/jsonfile"
	pgRepo "newsradar/internal/infra/adapter/persistence/postgres"
	"newsradar/internal/infra/db"
	"newsradar/internal/infra/headlines"
	"newsradar/internal/infra/images"
	"newsradar/internal/infra/notifier"
	workerPkg "newsradar/internal/infra/worker"
	"newsradar/internal/infra/writer"
	"newsradar/internal/observability/logging"
	"newsradar/internal/repository"
	genUC "newsradar/internal/usecase/generate"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	workerMetrics := workerPkg.NewWorkerMetrics()
	workerConfig, err := workerPkg.LoadConfigFromEnv(logger, workerMetrics)
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("generate_timeout", workerConfig.GenerateTimeout),
		slog.Int("health_port", workerConfig.HealthPort),
		slog.Bool("run_on_start", workerConfig.RunOnStart))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, cleanup := setupGenerateService(logger)
	defer cleanup()

	startMetricsServer(ctx, logger)

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	runScheduler(ctx, logger, svc, workerConfig, workerMetrics, healthServer)
}

// setupGenerateService wires the generation pipeline with its storage and
// external clients. The cleanup function closes the database connection when
// the Postgres backend is in use.
func setupGenerateService(logger *slog.Logger) (*genUC.Service, func()) {
	repo, cleanup := initStorage(logger)

	site, err := config.LoadSiteConfig()
	if err != nil {
		logger.Error("failed to load site configuration", slog.Any("error", err))
		os.Exit(1)
	}

	svc := genUC.NewService(
		repo,
		initWriter(logger),
		headlines.NewClient(os.Getenv("NEWS_API_KEY")),
		images.NewClient(os.Getenv("PEXELS_API_KEY")),
		notifier.FromEnv(),
		site,
	)
	return svc, cleanup
}

// initStorage selects the article store from STORAGE_BACKEND.
func initStorage(logger *slog.Logger) (repository.ArticleRepository, func()) {
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
		cleanup := func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}
		return pgRepo.NewArticleRepo(database), cleanup

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
		return repo, func() {}

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

// runScheduler installs the batch job on a cron scheduler and blocks until
// the context is cancelled.
func runScheduler(
	ctx context.Context,
	logger *slog.Logger,
	svc *genUC.Service,
	cfg *workerPkg.WorkerConfig,
	metrics *workerPkg.WorkerMetrics,
	healthServer *workerPkg.HealthServer,
) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC",
			slog.String("timezone", cfg.Timezone),
			slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(cfg.CronSchedule, func() {
		runBatch(logger, svc, cfg, metrics)
	}); err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	if cfg.RunOnStart {
		logger.Info("running initial batch before first scheduled tick")
		runBatch(logger, svc, cfg, metrics)
	}

	<-ctx.Done()
	logger.Info("shutting down worker...")
	healthServer.SetReady(false)

	// Let an in-flight batch finish, bounded by its own timeout.
	<-c.Stop().Done()
	logger.Info("worker stopped")
}

// runBatch executes one generation batch across all categories.
func runBatch(logger *slog.Logger, svc *genUC.Service, cfg *workerPkg.WorkerConfig, metrics *workerPkg.WorkerMetrics) {
	startTime := time.Now()
	logger.Info("generation batch started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GenerateTimeout)
	defer cancel()

	summary, err := svc.RunAll(ctx)
	if err != nil {
		logger.Error("generation batch failed", slog.Any("error", respond.SanitizeError(err)))
		metrics.RecordBatchRun("failure")
		metrics.RecordBatchDuration(time.Since(startTime).Seconds())
		return
	}

	metrics.RecordBatchRun("success")
	metrics.RecordBatchDuration(time.Since(startTime).Seconds())
	metrics.RecordArticlesGenerated(summary.Generated)
	metrics.RecordLastSuccess()

	logger.Info("generation batch completed",
		slog.Int("generated", summary.Generated),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed),
		slog.Duration("duration", time.Since(startTime)),
	)
}
