package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"calcdesk/config"
	httpLayer "calcdesk/http"
	"calcdesk/repository"
	"calcdesk/service"
	"calcdesk/tables"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := newApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer app.Close()

		return serve(ctx, cfg.Server, app.handler, logger)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides server.port)")
}

// app is the wired server: storage, cache, services and router.
type app struct {
	handler http.Handler
	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	if err := tables.Load(); err != nil {
		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}

	records, err := openRecords(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	if closer, ok := records.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	cache := openCache(ctx, cfg.Cache, logger)
	if closer, ok := cache.(interface{ Close() error }); ok {
		a.closers = append(a.closers, closer.Close)
	}

	store := service.NewStore(records,
		service.WithCache(cache, cfg.Cache.TTL),
		service.WithDefaultLocale(cfg.Locale.Default),
		service.WithLogger(logger),
	)

	insights := service.NewInsightsService(service.InsightsConfig{
		APIKey:    cfg.Insights.APIKey,
		URL:       cfg.Insights.URL,
		Model:     cfg.Insights.Model,
		MaxTokens: cfg.Insights.MaxTokens,
		Timeout:   cfg.Insights.Timeout,
	}, logger)
	if !insights.Enabled() {
		logger.Info("insights disabled, using template explanations")
	}

	loanService := service.NewLoanService(store)
	svc := httpLayer.Services{
		Loan:               loanService,
		TermRecommendation: service.NewTermRecommendationService(loanService, insights, store),
		DebtExit:           service.NewDebtExitService(insights, store),
		Investment:         service.NewInvestmentService(store),
		ROI:                service.NewROIService(store),
		Tax:                service.NewTaxService(store),
		EPF:                service.NewEPFService(store),
		BMI:                service.NewBMIService(store),
		Compatibility:      service.NewCompatibilityService(store),
		Records:            records,
	}

	routerCfg := httpLayer.RouterConfig{
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
	}
	if cfg.RateLimit.Enabled {
		limiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
		routerCfg.Limiter = limiter
		a.closers = append(a.closers, func() error {
			limiter.Stop()
			return nil
		})
	}

	a.handler = httpLayer.NewRouter(svc, routerCfg, logger)
	return a, nil
}

func openRecords(cfg config.StorageConfig, logger *zap.Logger) (repository.CalculationRepository, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		repo, err := repository.NewSQLiteCalculationRepository(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open calculation store: %w", err)
		}
		logger.Info("calculation records stored in sqlite", zap.String("path", repo.Path()))
		return repo, nil
	default:
		return repository.NewCalculationRepositoryMemory(), nil
	}
}

// openCache never fails; an unreachable redis only logs a warning.
func openCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) repository.CacheRepository {
	switch cfg.Backend {
	case config.BackendRedis:
		cache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, results will not be cached until it is",
				zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		return cache
	case config.BackendMemory:
		return repository.NewMemoryCache()
	default:
		return repository.NopCache{}
	}
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *zap.Logger) error {
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("API listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}
