package worker

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const DefaultCountdownInterval = time.Second

type subscriberMetrics interface {
	SubscribersChanged(n int)
}

type nopSubscriberMetrics struct{}

func (nopSubscriberMetrics) SubscribersChanged(int) {}

// CountdownHub drives every visible countdown from one ticker. Each
// subscriber gets a channel with room for one tick; a subscriber that has not
// drained the previous tick misses the next one instead of blocking others.
type CountdownHub struct {
	clock    clock.Clock
	interval time.Duration
	metrics  subscriberMetrics

	mu      sync.Mutex
	subs    map[uint64]chan time.Time
	nextID  uint64
	stopped bool
}

func NewCountdownHub() *CountdownHub {
	return &CountdownHub{
		clock:    clock.New(),
		interval: DefaultCountdownInterval,
		metrics:  nopSubscriberMetrics{},
		subs:     make(map[uint64]chan time.Time),
	}
}

func (h *CountdownHub) WithClock(c clock.Clock) *CountdownHub {
	h.clock = c
	return h
}

func (h *CountdownHub) WithInterval(d time.Duration) *CountdownHub {
	if d > 0 {
		h.interval = d
	}

	return h
}

func (h *CountdownHub) WithMetrics(m subscriberMetrics) *CountdownHub {
	h.metrics = m
	return h
}

// Subscribe registers a tick receiver. The returned cancel removes and
// closes the channel; calling it again is a no-op. Once Run has returned the
// channel comes back already closed.
func (h *CountdownHub) Subscribe() (<-chan time.Time, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		ch := make(chan time.Time)
		close(ch)

		return ch, func() {}
	}

	id := h.nextID
	h.nextID++

	ch := make(chan time.Time, 1)
	h.subs[id] = ch
	h.metrics.SubscribersChanged(len(h.subs))

	return ch, func() { h.unsubscribe(id) }
}

func (h *CountdownHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

// Run ticks until ctx is done, then closes every remaining subscription.
func (h *CountdownHub) Run(ctx context.Context) error {
	ticker := h.clock.Ticker(h.interval)
	defer ticker.Stop()
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			h.broadcast(t)
		}
	}
}

func (h *CountdownHub) broadcast(t time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- t:
		default:
		}
	}
}

func (h *CountdownHub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subs[id]
	if !ok {
		return
	}

	delete(h.subs, id)
	close(ch)
	h.metrics.SubscribersChanged(len(h.subs))
}

func (h *CountdownHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopped = true

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}

	h.metrics.SubscribersChanged(0)
}
