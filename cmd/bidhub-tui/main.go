package main

import (
	"context"
	"fmt"
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
		fmt.Fprintln(os.Stderr, "config.Load:", err)
		os.Exit(1)
	}

	// The screen belongs to the UI, so logs only go to the file.
	log := logx.NewLogger(logx.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.TUIFile,
		Quiet: true,
	}).With(slog.String(logx.FieldAppName, cfg.App.Name+"-tui"))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.RunTUI(ctx, cfg); err != nil {
		log.Error("terminal ui failed", logx.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint:gocritic
	}
}
