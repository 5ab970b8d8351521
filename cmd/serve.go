package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"crm/internal/api"
	"crm/internal/api/handler/v1handler"
	"crm/internal/config"
	crmservice "crm/internal/crm"
	"crm/internal/worker"
	"crm/pkg/dispatcher"
	"crm/pkg/domlog"
	"crm/pkg/logger"
	"crm/pkg/messagebus"
	"crm/pkg/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, service crmservice.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Service: service},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			meterProvider, err := metrics.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			bus := messagebus.New(messagebus.NewRiverBus(strg, cfg.Messaging.MaxAttempts))
			eventDispatcher, err := dispatcher.New(bus, domlog.NewZapDomainLogger(), meterProvider.Meter("crm"))
			if err != nil {
				logger.Fatal(ctx, "could not create event dispatcher", zap.Error(err))
			}

			service := crmservice.New(strg, eventDispatcher)

			stopWebserver := setupServer(ctx, cfg, service)

			riverClient, err := worker.Start(ctx, strg.Pool, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}

			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Error(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
