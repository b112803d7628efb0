package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/personal-assistant/internal/app/scheduler"
	"github.com/magabrotheeeer/personal-assistant/internal/config"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/logger"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New("scheduler", cfg.Env)

	log.Info("starting scheduler")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := scheduler.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize scheduler app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("scheduler app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("scheduler app stopped gracefully")
}
