package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/errgroup"

	"bidhub/internal/config"
	"bidhub/internal/infrastructure/feed"
	"bidhub/internal/server"
	"bidhub/pkg/application/modules"
)

// RunFeedStub serves the demo auction backend.
func RunFeedStub(ctx context.Context, cfg config.Config) error {
	mode, err := server.ParseFeedMode(cfg.FeedStub.Mode)
	if err != nil {
		return fmt.Errorf("server.ParseFeedMode: %w", err)
	}

	c := clock.New()
	stub := server.NewFeedServer(mode, feed.FallbackAuctions, c)

	g, ctx := errgroup.WithContext(ctx)

	logger(ctx).Info("feed stub configured", slog.String("mode", string(mode)))

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.FeedStub.ListenAddress,
		Handler:           stub.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
	})

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
