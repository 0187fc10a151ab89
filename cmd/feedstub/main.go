package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bidhub/internal/application"
	"bidhub/internal/config"
	"bidhub/pkg/contextx"
	"bidhub/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	log := logx.NewLogger(logx.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}).With(slog.String(logx.FieldAppName, "feedstub"))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.RunFeedStub(ctx, cfg); err != nil {
		log.Error("feed stub failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
