package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/shell"
)

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	setLogLevel(getEnv("LOG_LEVEL", "warn"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, shell.ErrAborted), errors.Is(err, context.Canceled):
		log.Warn().Err(err).Msg("game ended early")
		os.Exit(130)
	default:
		log.Error().Err(err).Msg("wordle failed")
		os.Exit(1)
	}
}

func setLogLevel(s string) {
	if lvl, err := zerolog.ParseLevel(s); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
