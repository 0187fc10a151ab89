package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
	"bidhub/pkg/logx"
)

const DefaultPollInterval = 60 * time.Second

type AuctionLoader interface {
	Fetch(ctx context.Context) entity.AuctionList
}

type SnapshotStore interface {
	Replace(ctx context.Context, snap entity.Snapshot) bool
}

// FeedPoller refreshes the snapshot from the feed right away and then on
// every interval. Polls are never retried; a failed one waits for the next
// tick.
type FeedPoller struct {
	loader   AuctionLoader
	store    SnapshotStore
	clock    clock.Clock
	interval time.Duration
	seq      atomic.Uint64

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewFeedPoller(loader AuctionLoader, store SnapshotStore) *FeedPoller {
	return &FeedPoller{
		loader:   loader,
		store:    store,
		clock:    clock.New(),
		interval: DefaultPollInterval,
	}
}

func (w *FeedPoller) WithInterval(d time.Duration) *FeedPoller {
	if d > 0 {
		w.interval = d
	}

	return w
}

func (w *FeedPoller) WithClock(c clock.Clock) *FeedPoller {
	w.clock = c
	return w
}

func (w *FeedPoller) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("feed poller is already running")
	}

	pollCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(pollCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("feed poller stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *FeedPoller) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *FeedPoller) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

func (w *FeedPoller) Run(ctx context.Context) error {
	ticker := w.clock.Ticker(w.interval)
	defer ticker.Stop()

	logger(ctx).Info("feed poller started", slog.Duration("interval", w.interval))

	w.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("feed poller stopped")
			return ctx.Err()
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh runs one poll. The sequence number is taken before the fetch, so
// when polls overlap the one started last wins regardless of which resolves
// last. A poll whose context ended mid-fetch is discarded.
func (w *FeedPoller) Refresh(ctx context.Context) (entity.Snapshot, bool) {
	seq := w.seq.Add(1)

	list := w.loader.Fetch(ctx)
	if ctx.Err() != nil {
		return entity.Snapshot{}, false
	}

	snap := entity.Snapshot{
		Seq:       seq,
		State:     value.LoadStateResolved,
		Auctions:  list,
		FetchedAt: w.clock.Now(),
	}

	return snap, w.store.Replace(ctx, snap)
}
