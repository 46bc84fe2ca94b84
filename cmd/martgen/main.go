package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New()
	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Can't run application")
		zap.L().Fatal("Can't run application: ", zap.Error(err))
	}
}
