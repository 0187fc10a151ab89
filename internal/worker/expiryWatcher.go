package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
	"bidhub/pkg/logx"
)

const announcedTTL = 24 * time.Hour

type Notifier interface {
	Notify(ctx context.Context, a entity.Auction) error
}

type SnapshotSource interface {
	Current() entity.Snapshot
}

type TickSource interface {
	Subscribe() (<-chan time.Time, func())
}

// ExpiryWatcher announces auctions that end while being watched. A record
// has to be seen running first: records that are already over when they
// show up are never announced.
type ExpiryWatcher struct {
	ticks     TickSource
	snapshots SnapshotSource
	notifier  Notifier

	open      map[value.AuctionID]struct{}
	announced *cache.Cache
}

func NewExpiryWatcher(ticks TickSource, snapshots SnapshotSource, notifier Notifier) *ExpiryWatcher {
	return &ExpiryWatcher{
		ticks:     ticks,
		snapshots: snapshots,
		notifier:  notifier,
		open:      make(map[value.AuctionID]struct{}),
		announced: cache.New(announcedTTL, time.Hour),
	}
}

func (w *ExpiryWatcher) Run(ctx context.Context) error {
	ticks, cancel := w.ticks.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-ticks:
			if !ok {
				return nil
			}

			w.Check(ctx, now)
		}
	}
}

// Check compares the current snapshot against the records seen running on
// the previous call. It is not safe for concurrent use.
func (w *ExpiryWatcher) Check(ctx context.Context, now time.Time) {
	snap := w.snapshots.Current()
	if !snap.Resolved() {
		return
	}

	open := make(map[value.AuctionID]struct{}, len(snap.Auctions))

	for _, a := range snap.Auctions {
		if !a.Ended(now) {
			open[a.ID] = struct{}{}
			continue
		}

		if _, wasOpen := w.open[a.ID]; !wasOpen {
			continue
		}

		if _, done := w.announced.Get(a.ID.String()); done {
			continue
		}

		w.announced.SetDefault(a.ID.String(), now)

		logger(ctx).Info(
			"auction ended",
			slog.String(logx.FieldAuctionID, a.ID.String()),
			slog.String(logx.FieldAuctionName, a.Name),
		)

		if err := w.notifier.Notify(ctx, a); err != nil {
			logger(ctx).Error(
				"notifier.Notify",
				slog.String(logx.FieldAuctionID, a.ID.String()),
				logx.Error(err),
			)
		}
	}

	w.open = open
}
