// Package snapshot holds the published auction list. Writers replace it
// wholesale; a poll that resolves after a fresher one is dropped.
package snapshot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/pkg/contextx"
	"bidhub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	filterCacheTTL     = 5 * time.Minute
	filterCacheCleanup = 10 * time.Minute
)

type publishMetrics interface {
	SnapshotPublished(size int)
}

type nopMetrics struct{}

func (nopMetrics) SnapshotPublished(int) {}

type Store struct {
	mu       sync.RWMutex
	current  entity.Snapshot
	resolved chan struct{}

	filterCache *cache.Cache
	metrics     publishMetrics
}

func NewStore() *Store {
	return &Store{
		current:     entity.Snapshot{State: value.LoadStatePending},
		resolved:    make(chan struct{}),
		filterCache: cache.New(filterCacheTTL, filterCacheCleanup),
		metrics:     nopMetrics{},
	}
}

func (s *Store) WithMetrics(m publishMetrics) *Store {
	s.metrics = m
	return s
}

// Replace publishes snap unless a snapshot with the same or a newer sequence
// number is already published. It reports whether snap was applied.
func (s *Store) Replace(ctx context.Context, snap entity.Snapshot) bool {
	s.mu.Lock()

	if s.current.Resolved() && snap.Seq <= s.current.Seq {
		current := s.current.Seq
		s.mu.Unlock()

		logger(ctx).Info(
			"stale auction snapshot dropped",
			slog.Uint64(logx.FieldSeq, snap.Seq),
			slog.Uint64("current-seq", current),
		)

		return false
	}

	firstResolve := !s.current.Resolved()

	snap.State = value.LoadStateResolved
	snap.Auctions = snap.Auctions.Clone()
	s.current = snap

	s.mu.Unlock()

	if firstResolve {
		close(s.resolved)
	}

	s.filterCache.Flush()

	s.metrics.SnapshotPublished(len(snap.Auctions))

	logger(ctx).Debug(
		"auction snapshot published",
		slog.Uint64(logx.FieldSeq, snap.Seq),
		slog.Int(logx.FieldCount, len(snap.Auctions)),
	)

	return true
}

// Current returns the published snapshot. The list is shared and must be
// treated as read-only.
func (s *Store) Current() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

func (s *Store) Resolved() bool {
	return s.Current().Resolved()
}

// WaitResolved blocks until the first snapshot is published or ctx is done.
func (s *Store) WaitResolved(ctx context.Context) error {
	select {
	case <-s.resolved:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

func (s *Store) Get(id value.AuctionID) (entity.Auction, bool) {
	return s.Current().Auctions.Find(id)
}

// Filter applies listing.Filter to the current snapshot. Category-only results
// are kept per snapshot sequence; searches are free text and always computed.
func (s *Store) Filter(search string, category value.Category) entity.AuctionList {
	return s.filter(s.Current(), search, category)
}

// Present renders the current snapshot for q. The snapshot is read once, so
// the cards and the totals always describe the same poll.
func (s *Store) Present(q listing.Query, now time.Time) listing.View {
	if q.Category == "" {
		q.Category = value.CategoryAll
	}

	snap := s.Current()

	return listing.Render(snap, s.filter(snap, q.Search, q.Category), now)
}

func (s *Store) filter(snap entity.Snapshot, search string, category value.Category) entity.AuctionList {
	if strings.TrimSpace(search) != "" {
		return listing.Filter(snap.Auctions, search, category)
	}

	key := filterKey(snap.Seq, category)

	if cached, ok := s.filterCache.Get(key); ok {
		if list, ok := cached.(entity.AuctionList); ok {
			return list
		}
	}

	list := listing.Filter(snap.Auctions, search, category)
	s.filterCache.SetDefault(key, list)

	return list
}

func filterKey(seq uint64, category value.Category) string {
	return strconv.FormatUint(seq, 10) + "\x00" + category.String()
}
