package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/derisk"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/Tzienom/derisk-research/internal/loanstate/nostra"
	"github.com/Tzienom/derisk-research/internal/loanstate/repository/clickhouse"
	"github.com/Tzienom/derisk-research/internal/loanstate/repository/postgres"
	"github.com/Tzienom/derisk-research/internal/loanstate/service/ingester"
	"github.com/Tzienom/derisk-research/internal/metrics"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	exitOK             = 0
	exitError          = 1
	exitRetryExhausted = 3
)

type config struct {
	Storage       string        `long:"storage" env:"NOSTRA_ALPHA_STORAGE" choice:"clickhouse" choice:"postgres" default:"clickhouse" description:"snapshot storage backend"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"NOSTRA_ALPHA_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	PostgresDSN   string        `long:"postgres-dsn" env:"NOSTRA_ALPHA_POSTGRES_DSN" description:"Postgres DSN"`
	APIURL        string        `long:"api-url" env:"NOSTRA_ALPHA_API_URL" description:"DeRisk data API events endpoint" required:"true"`
	APITimeout    time.Duration `long:"api-timeout" env:"NOSTRA_ALPHA_API_TIMEOUT" description:"HTTP timeout for data API requests" default:"30s"`
	APIRateLimit  int           `long:"api-rate-limit" env:"NOSTRA_ALPHA_API_RATE_LIMIT" description:"max data API requests per second, 0 disables" default:"10"`
	FetchWorkers  int           `long:"fetch-workers" env:"NOSTRA_ALPHA_FETCH_WORKERS" description:"concurrent per-address fetches" default:"4"`
	Registry      string        `long:"registry" env:"NOSTRA_ALPHA_REGISTRY" description:"protocol registry YAML" default:"configs/nostra_alpha.yaml"`
	StartBlock    uint64        `long:"start-block" env:"NOSTRA_ALPHA_START_BLOCK" description:"first block to fold" default:"10854"`
	EndBlock      uint64        `long:"end-block" env:"NOSTRA_ALPHA_END_BLOCK" description:"block at which ingestion stops" default:"647952"`
	PageSize      uint64        `long:"page-size" env:"NOSTRA_ALPHA_PAGE_SIZE" description:"blocks per fetched page" default:"1000"`
	RetryLimit    int           `long:"retry-limit" env:"NOSTRA_ALPHA_RETRY_LIMIT" description:"consecutive empty pages before giving up" default:"100"`
	IdleSleep     time.Duration `long:"idle-sleep" env:"NOSTRA_ALPHA_IDLE_SLEEP" description:"pause after an empty page" default:"0s"`
	MetricsAddr   string        `long:"metrics-addr" env:"NOSTRA_ALPHA_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

type repository interface {
	ingester.Repository
	MaxLoanStateBlock(ctx context.Context, protocol model.Protocol) (uint64, error)
	io.Closer
}

func main() {
	os.Exit(start())
}

func start() int {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return exitOK
		}
		logger.Error("failed to parse flags", zap.Error(err))
		return exitError
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	result, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("nostra alpha loan state ingester failed",
			zap.String("state", string(result.State)),
			zap.Uint64("checkpoint", result.Checkpoint),
			zap.Error(err),
		)
		return exitError
	}
	if result.State == ingester.StateRetryExhausted {
		return exitRetryExhausted
	}
	return exitOK
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (ingester.Result, error) {
	registry, err := nostra.LoadRegistry(cfg.Registry)
	if err != nil {
		return ingester.Result{}, fmt.Errorf("load registry: %w", err)
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := newRepository(ctx, cfg)
	if err != nil {
		return ingester.Result{}, fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close repository", zap.Error(err))
		}
	}()

	if last, err := repo.MaxLoanStateBlock(ctx, registry.Protocol()); err != nil {
		logger.Warn("failed to read last persisted block", zap.Error(err))
	} else {
		logger.Info("last persisted block", zap.Uint64("block", last), zap.String("storage", cfg.Storage))
	}

	apiMetrics := metrics.NewDataAPIClient()
	client, err := derisk.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.APITimeout}, cfg.APIRateLimit, apiMetrics)
	if err != nil {
		return ingester.Result{}, fmt.Errorf("init data api client: %w", err)
	}
	source := derisk.NewSource(client, cfg.FetchWorkers, apiMetrics, logger.Named("source"))
	processor := nostra.NewProcessor(registry, logger.Named("processor"))

	svc, err := ingester.NewLoanStateIngesterService(
		source,
		repo,
		processor,
		metrics.NewLoanStateIngester(registry.Protocol()),
		ingester.Config{
			Protocol:          registry.Protocol(),
			InterestRateModel: registry.InterestRateModel(),
			Addresses:         registry.Addresses(),
			StartBlock:        cfg.StartBlock,
			EndBlock:          cfg.EndBlock,
			PageSize:          cfg.PageSize,
			RetryLimit:        cfg.RetryLimit,
			IdleSleep:         cfg.IdleSleep,
		},
		logger,
	)
	if err != nil {
		return ingester.Result{}, err
	}
	return svc.Run(ctx)
}

func newRepository(ctx context.Context, cfg config) (repository, error) {
	switch cfg.Storage {
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, errors.New("postgres DSN is required")
		}
		return postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewRepository("postgres"))
	default:
		if cfg.ClickhouseDSN == "" {
			return nil, errors.New("ClickHouse DSN is required")
		}
		return clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository("clickhouse"))
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
