package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/delivery-insights-go/internal/api"
	"github.com/jengzang/delivery-insights-go/internal/config"
	"github.com/jengzang/delivery-insights-go/internal/dataset"
	"github.com/jengzang/delivery-insights-go/internal/logger"
	"github.com/jengzang/delivery-insights-go/internal/metrics"
	"github.com/jengzang/delivery-insights-go/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 加载数据集
	src, closer, err := dataset.OpenSource(dataset.SourceConfig{
		Path:   cfg.Dataset.Path,
		Format: dataset.Format(cfg.Dataset.Format),
		Sheet:  cfg.Dataset.Sheet,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	res, err := dataset.Load(ctx, src, dataset.Options{
		Strict:         cfg.Dataset.Strict,
		MaxDiagnostics: cfg.Dataset.MaxDiagnostics,
	}, log)
	if err != nil {
		return err
	}

	dashboard := service.NewDashboardService(res, src.Name())
	m := metrics.New()
	m.ObserveDataset(res.Report, dashboard.Report().LoadedAt)

	// 初始化路由
	router := api.SetupRouter(api.Dependencies{
		Config:    cfg,
		Logger:    log,
		Dashboard: dashboard,
		Metrics:   m,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.Int("orders", len(res.Orders)),
			slog.Bool("auth", cfg.Auth.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
