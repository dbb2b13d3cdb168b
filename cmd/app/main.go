package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/middleearth/internal/bootstrap"
	"github.com/osse101/middleearth/internal/config"
	"github.com/osse101/middleearth/internal/server"
	"github.com/osse101/middleearth/internal/sse"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	rng := rand.New(rand.NewSource(cfg.Seed()))

	content, err := bootstrap.LoadContent(ctx, cfg, rng)
	if err != nil {
		return err
	}

	bus := bootstrap.InitializeEventSystem()

	var (
		srv     *server.Server
		battles *server.BattleLog
		hub     *sse.Hub
	)
	if cfg.MetricsAddr != "" {
		battles = server.NewBattleLog(server.DefaultBattleLogSize, server.DefaultBattleLogTTLMin*time.Minute)
		hub = sse.NewHub()
		hub.Start()
		srv = server.NewServer(server.Options{Addr: cfg.MetricsAddr, Version: cfg.Version, Events: hub}, battles)
		go func() {
			if err := srv.Start(); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:  bus,
		BattleLog: battles,
		Events:    hub,
	}); err != nil {
		return err
	}

	game, err := bootstrap.BuildGame(cfg, content, bus, rng, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// stdin reads do not observe ctx, so a signal abandons the game goroutine
	done := make(chan error, 1)
	go func() { done <- game.Run(ctx) }()

	var gameErr error
	select {
	case gameErr = <-done:
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Events: hub})

	if gameErr != nil && !errors.Is(gameErr, context.Canceled) {
		return gameErr
	}
	return nil
}
