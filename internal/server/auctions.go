package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/pkg/errcodes"
	"bidhub/pkg/httpx/reply"
	"bidhub/pkg/rest"
)

type auctionStore interface {
	Get(id value.AuctionID) (entity.Auction, bool)
	Present(q listing.Query, now time.Time) listing.View
}

type feedRefresher interface {
	Refresh(ctx context.Context) (entity.Snapshot, bool)
}

type AuctionServer struct {
	store     auctionStore
	refresher feedRefresher
	clock     clock.Clock
}

func NewAuctionServer(store auctionStore, refresher feedRefresher, c clock.Clock) AuctionServer {
	return AuctionServer{
		store:     store,
		refresher: refresher,
		clock:     c,
	}
}

func (s AuctionServer) getV1Auctions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	category, err := value.ParseCategory(query.Get("category"))
	if err != nil {
		return fmt.Errorf("value.ParseCategory: %w", err)
	}

	view := s.store.Present(listing.Query{Search: query.Get("search"), Category: category}, s.clock.Now())

	reply.JSON(ctx, w, http.StatusOK, newRESTAuctionList(view))

	return nil
}

func (s AuctionServer) getV1Auction(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	auction, err := s.auction(r)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAuctionCard(listing.CardFor(auction, s.clock.Now())))

	return nil
}

func (s AuctionServer) getV1AuctionCountdown(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	auction, err := s.auction(r)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCountdown(listing.Countdown(auction.EndTime, s.clock.Now())))

	return nil
}

func (s AuctionServer) getV1Categories(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Categories{
		Categories: lo.Map(value.Categories(), func(c value.Category, _ int) string {
			return c.String()
		}),
	})

	return nil
}

// postV1Refresh polls the feed out of schedule and returns the resulting
// list. A poll that lost to a fresher one still answers with the fresher
// snapshot.
func (s AuctionServer) postV1Refresh(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if _, applied := s.refresher.Refresh(ctx); !applied && ctx.Err() != nil {
		return failure.NewTimeoutErrorFromError(
			fmt.Errorf("refresher.Refresh: %w", ctx.Err()),
			failure.WithCode(errcodes.TimeoutExceeded),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAuctionList(s.store.Present(listing.Query{}, s.clock.Now())))

	return nil
}

func (s AuctionServer) auction(r *http.Request) (entity.Auction, error) {
	id, err := value.ParseAuctionID(chi.URLParam(r, "id"))
	if err != nil {
		return entity.Auction{}, fmt.Errorf("value.ParseAuctionID: %w", err)
	}

	auction, ok := s.store.Get(id)
	if !ok {
		return entity.Auction{}, failure.NewNotFoundError(
			"auction "+id.String()+" not found",
			failure.WithCode(errcodes.AuctionNotFound),
			failure.WithDescription("auction not found"),
		)
	}

	return auction, nil
}
