// Package handler answers Telegram commands from the snapshot store.
package handler

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type AuctionStore interface {
	Get(id value.AuctionID) (entity.Auction, bool)
	Present(q listing.Query, now time.Time) listing.View
}

type Refresher interface {
	Refresh(ctx context.Context) (entity.Snapshot, bool)
}

type Handler struct {
	store     AuctionStore
	refresher Refresher
	clock     clock.Clock
	guide     entity.Guide
}

func New(store AuctionStore, refresher Refresher, c clock.Clock) *Handler {
	return &Handler{
		store:     store,
		refresher: refresher,
		clock:     c,
		guide:     listing.Guide(),
	}
}
