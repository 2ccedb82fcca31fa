package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-scaffold/cmd/scaffold/commands"
)

// Version information, set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, Version, Commit); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
