package main

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-ledger/api"
	"github.com/carson-networks/household-ledger/internal/config"
	"github.com/carson-networks/household-ledger/internal/logging"
	"github.com/carson-networks/household-ledger/internal/service"
	"github.com/carson-networks/household-ledger/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("household-ledger starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	if envConfig.MigrationsRun && store.DB != nil {
		result, err := storage.RunMigrations(store.DB)
		if err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
			return
		}
		logger.WithFields(logrus.Fields{
			"preMigrationVersion":  result.PreMigrationVersion,
			"postMigrationVersion": result.PostMigrationVersion,
		}).Info("Migration status")
	}

	logger.WithField("storageBackend", envConfig.StorageBackend).Info("household-ledger storage ready")

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.HTTPPort,
		Service: service.NewService(store, logger, nil),
		Storage: store,
	}
	httpRest.Serve()
}
