package server

import (
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"bidhub/internal/domain/entity"
	"bidhub/pkg/errcodes"
	"bidhub/pkg/httpx/reply"
	"bidhub/pkg/middlewarex"
	"bidhub/pkg/rest"
)

// FeedMode selects how the demo feed answers /api/auctions.
type FeedMode string

const (
	FeedModeNormal FeedMode = "normal"
	FeedModeEmpty  FeedMode = "empty"
	FeedModeError  FeedMode = "error"
)

func ParseFeedMode(s string) (FeedMode, error) {
	switch m := FeedMode(s); m {
	case FeedModeNormal, FeedModeEmpty, FeedModeError:
		return m, nil
	case "":
		return FeedModeNormal, nil
	default:
		return "", failure.NewInvalidArgumentError(
			"unknown feed mode "+s,
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(fmt.Sprintf("feed mode must be one of %s, %s, %s", FeedModeNormal, FeedModeEmpty, FeedModeError)),
		)
	}
}

type feedResponse struct {
	Auctions entity.AuctionList `json:"auctions"`
}

// Catalogue builds the served records with end times relative to now.
type Catalogue func(now time.Time) entity.AuctionList

// FeedServer is a stand-in auction backend for local runs. Every response is
// anchored to the request time, so a long-running stub keeps its mix of live
// and ended records.
type FeedServer struct {
	mode      FeedMode
	catalogue Catalogue
	clock     clock.Clock
}

func NewFeedServer(mode FeedMode, catalogue Catalogue, c clock.Clock) FeedServer {
	return FeedServer{
		mode:      mode,
		catalogue: catalogue,
		clock:     c,
	}
}

func (s FeedServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middlewarex.TraceID, middlewarex.Logger, middlewarex.Recovery)

	r.Route("/api", func(r chi.Router) {
		r.Get("/auctions", handler(s.getAuctions))
		r.Get("/health", handler(s.getHealth))
	})

	return r
}

func (s FeedServer) getAuctions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	switch s.mode {
	case FeedModeError:
		return failure.NewInternalServerError(
			"feed stub in error mode",
			failure.WithCode(errcodes.InternalServerError),
			failure.WithDescription("auction backend unavailable"),
		)
	case FeedModeEmpty:
		reply.JSON(ctx, w, http.StatusOK, feedResponse{Auctions: entity.AuctionList{}})
	default:
		reply.JSON(ctx, w, http.StatusOK, feedResponse{Auctions: s.catalogue(s.clock.Now())})
	}

	return nil
}

func (s FeedServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	now := s.clock.Now()

	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{
		Status:    "healthy",
		Timestamp: now,
		ActiveAuctions: lo.CountBy(s.catalogue(now), func(a entity.Auction) bool {
			return a.Live(now)
		}),
	})

	return nil
}
