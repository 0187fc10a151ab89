package notifier

import (
	"context"
	"log/slog"

	"bidhub/internal/domain/entity"
	"bidhub/pkg/contextx"
	"bidhub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// LogNotifier writes announcements to the log. It stands in for the Telegram
// bot when no token is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, a entity.Auction) error {
	logger(ctx).Info(
		"auction result",
		slog.String(logx.FieldAuctionID, a.ID.String()),
		slog.String(logx.FieldAuctionName, a.Name),
		slog.String("final-price", a.CurrentPrice.String()),
		slog.Int("bids", a.Bids),
	)

	return nil
}
