package server

import (
	"net/http"
	"time"

	"git.appkode.ru/pub/go/metrics"
	"github.com/go-chi/chi/v5"

	"bidhub/pkg/httpx/reply"
	"bidhub/pkg/logx"
	"bidhub/pkg/middlewarex"
)

type requestObserver interface {
	RequestStart(userID string)
	RequestFinish(method string, status int, path string, duration time.Duration, userID string)
}

type HandlerOptions struct {
	LogFieldMaxLen int
	// Observer records request metrics; nil disables them.
	Observer requestObserver
}

// NewHandler wires the middleware chain around the API routes.
func NewHandler(s Server, opts HandlerOptions) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Session,
		middlewarex.Logger,
		middlewarex.Recovery,
	)

	captured := []func(http.Handler) http.Handler{
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
	}

	if opts.Observer != nil {
		captured = append([]func(http.Handler) http.Handler{
			metrics.Middleware(opts.Observer, middlewarex.SessionKind),
		}, captured...)
	}

	s.RegisterRoutes(r, captured...)

	return r
}

// RegisterRoutes mounts the API. The captured middlewares wrap every route
// except the websocket stream, which needs the raw connection.
func (s Server) RegisterRoutes(r chi.Router, captured ...func(http.Handler) http.Handler) { //nolint:funlen
	r.Route("/v1", func(r chi.Router) {
		r.Get("/stream", s.getV1Stream)

		r.Group(func(r chi.Router) {
			r.Use(captured...)

			r.Route("/auctions", func(r chi.Router) {
				r.Get("/", handler(s.getV1Auctions))
				r.Get("/{id}", handler(s.getV1Auction))
				r.Get("/{id}/countdown", handler(s.getV1AuctionCountdown))
				r.Post("/{id}/bid", handler(s.postV1AuctionBid))
			})

			r.Get("/categories", handler(s.getV1Categories))
			r.Post("/refresh", handler(s.postV1Refresh))

			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", handler(s.postV1AuthLogin))
				r.Post("/register", handler(s.postV1AuthRegister))
			})

			r.Get("/how-it-works", handler(s.getV1HowItWorks))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
