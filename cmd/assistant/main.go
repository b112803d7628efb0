// Package main Personal Assistant API
//
// @title           Personal Assistant API
// @version         1.0
// @description     Набор утилит и записная книжка с напоминаниями о днях рождения
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/personal-assistant/internal/app/assistant"
	"github.com/magabrotheeeer/personal-assistant/internal/config"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/logger"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New("assistant", cfg.Env)

	log.Info("starting assistant")
	log.Debug("loaded config", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := assistant.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("assistant stopped gracefully")
}
