package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/favcities/internal/api/grpc/context"
	"github.com/dtroode/favcities/internal/api/grpc/router"
	grpcServer "github.com/dtroode/favcities/internal/api/grpc/server"
	"github.com/dtroode/favcities/internal/config"
	"github.com/dtroode/favcities/internal/logger"
	"github.com/dtroode/favcities/internal/metrics"
	"github.com/dtroode/favcities/internal/model"
	"github.com/dtroode/favcities/internal/repository/memory"
	"github.com/dtroode/favcities/internal/server"
	"github.com/dtroode/favcities/internal/service"
	"github.com/dtroode/favcities/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	logAppVersion()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	userRepo := memory.NewUserRepository()
	sessionRepo := memory.NewSessionRepository(token.NewOpaque())
	metrics.RegisterStoreGauges(registry, userRepo, sessionRepo)

	authService := service.NewAuth(userRepo, sessionRepo, appMetrics, logger)
	favoritesService := service.NewFavorites(userRepo, appMetrics, logger)
	ctxMgr := grpcctx.NewManager()

	r := router.New(authService, favoritesService, authService, ctxMgr, appMetrics, logger)
	s := r.Register()
	reflection.Register(s)

	servers := []model.Server{
		grpcServer.NewGRPCServer(s, r.Health(), fmt.Sprintf(":%s", cfg.GRPC.Port)),
	}
	if cfg.Metrics.Enabled {
		servers = append(servers, server.NewMetricsServer(registry, fmt.Sprintf(":%s", cfg.Metrics.Port), cfg.Metrics.Path))
	}

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	g, gCtx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info("Starting server on", "address", srv.Address())
			if err := srv.Start(sl); err != nil {
				return fmt.Errorf("server %s: %w", srv.Address(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Stop(shutdownCtx); err != nil {
				logger.Error("error during server shutdown", "error", err, "address", srv.Address())
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
