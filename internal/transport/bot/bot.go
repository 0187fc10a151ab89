// Package bot runs the Telegram command front end over long polling.
package bot

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"bidhub/internal/transport/bot/handler"
	"bidhub/pkg/contextx"
	"bidhub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollingTimeout = 60

type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	adminID int64
}

func New(bot *telego.Bot, h *handler.Handler, adminID int64) *Bot {
	return &Bot{
		bot:     bot,
		handler: h,
		adminID: adminID,
	}
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	bh, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(bh, b.adminID)

	done := make(chan error, 1)

	go func() {
		done <- bh.Start()
	}()

	logger(ctx).Info("telegram commands started")

	select {
	case <-ctx.Done():
	case err := <-done:
		if err != nil {
			return fmt.Errorf("bh.Start: %w", err)
		}

		return nil
	}

	if err := bh.Stop(); err != nil {
		logger(ctx).Error("bh.Stop", logx.Error(err))
	}

	logger(ctx).Info("telegram commands stopped")

	return nil
}
