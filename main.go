package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-server/api"
	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	defer dbStorage.Close()

	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.NumWorkers)
	delegator.Start()

	httpRest := &api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  svc,
		Operator: delegator,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		httpRest.Serve()
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logrus.Info("finance-server draining")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpRest.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("HttpServer.Shutdown")
		}

		// Stop accepting writes only after the HTTP surface is gone so no
		// request finds a closed queue.
		delegator.Stop()
		return nil
	})

	if err := group.Wait(); err != nil {
		logrus.WithError(err).Error("finance-server exited with error")
	}
	logrus.Info("finance-server stopped")
}
