package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotnot/rotnot-backend/cmd/config"
	migration "github.com/rotnot/rotnot-backend/cmd/database/migrate"
	"github.com/rotnot/rotnot-backend/internal/observability"
	"github.com/rotnot/rotnot-backend/internal/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, sweeper, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sweeper.Start(ctx)
	observability.StartMetricsServer(utils.GetConfig("PROMETHEUS_PORT"))

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	cancel()
	if err := app.Shutdown(); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
}
