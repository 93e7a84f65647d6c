package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/nucareers/career-portal/internal/bootstrap"
	"github.com/nucareers/career-portal/internal/config"
	"github.com/nucareers/career-portal/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format)

	stores, err := bootstrap.OpenStores(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("open stores")
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			log.WithError(err).Warn("close stores")
		}
	}()

	if cfg.AutoMigrate {
		if err := stores.Migrate(context.Background()); err != nil {
			log.WithError(err).Fatal("migrate schema")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := bootstrap.NewHTTPServer(cfg, log, stores, registry)

	go func() {
		log.WithFields(logrus.Fields{
			"port":  cfg.Port,
			"store": cfg.Store.Kind,
		}).Info("career portal api listening")
		if err := server.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
