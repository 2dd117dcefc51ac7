package main

import (
	"context"
	"os/signal"
	"syscall"

	"seniorwork_backend/internal/app"
	"seniorwork_backend/internal/config"
	"seniorwork_backend/internal/logger"
)

func main() {
	config.LoadConfig()

	application, err := app.New()
	if err != nil {
		logger.Fatal("failed to start application", "error", err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Fatal("server exited", "error", err.Error())
	}
}
