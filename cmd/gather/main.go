package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/calloway/gather/internal/api"
	"github.com/calloway/gather/internal/config"
	"github.com/calloway/gather/internal/keyring"
	"github.com/calloway/gather/internal/logging"
	"github.com/calloway/gather/internal/session"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gather: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.LogLevel)

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "gather: create data dir: %v\n", err)
		os.Exit(1)
	}

	ring, err := keyring.Open(cfg.KeyringPath(), cfg.SecretPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gather: open keyring: %v\n", err)
		os.Exit(1)
	}
	defer ring.Close()

	sessions := session.NewStore(ring, logger.With("component", "session"))
	if err := sessions.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "gather: restore session: %v\n", err)
		os.Exit(1)
	}

	client := api.New(cfg.BaseURL, sessions, logger)

	// Ctrl-C cancels whatever fetches are in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{
		client:   client,
		sessions: sessions,
		out:      os.Stdout,
		in:       os.Stdin,
	}

	if err := app.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gather: %v\n", err)
		os.Exit(1)
	}
}
