// Package account holds the sign-in, registration and bidding stubs. None of
// them keeps state: sessions are canned and bids are acknowledged, never
// recorded.
package account

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/benbjohnson/clock"
	"github.com/shopspring/decimal"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
	"bidhub/pkg/contextx"
	"bidhub/pkg/errcodes"
	"bidhub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	StubToken    = "fake-jwt-token"
	StubUserName = "Demo User"

	MessageSignInRequired = "Please sign in to place a bid."
	MessageBidPlaced      = "Bid placed successfully!"
)

type AuctionSource interface {
	Get(id value.AuctionID) (entity.Auction, bool)
}

type Service struct {
	auctions AuctionSource
	clock    clock.Clock
}

func NewService(auctions AuctionSource) *Service {
	return &Service{
		auctions: auctions,
		clock:    clock.New(),
	}
}

func (s *Service) WithClock(c clock.Clock) *Service {
	s.clock = c
	return s
}

func (s *Service) Login(ctx context.Context, email, _ string) (entity.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entity.Session{}, failure.NewInvalidArgumentError(
			"empty email",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("email is required"),
		)
	}

	logger(ctx).Info("sign in")

	return entity.Session{
		Token: StubToken,
		User:  entity.User{Name: StubUserName, Email: email},
	}, nil
}

func (s *Service) Register(ctx context.Context, fullName, email, _ string) (entity.Session, error) {
	fullName, email = strings.TrimSpace(fullName), strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return entity.Session{}, failure.NewInvalidArgumentError(
			"empty full name or email",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("full name and email are required"),
		)
	}

	logger(ctx).Info("register")

	return entity.Session{
		Token: StubToken,
		User:  entity.User{Name: fullName, Email: email},
	}, nil
}

// PlaceBid acknowledges a bid on a running auction. Nothing is stored.
func (s *Service) PlaceBid(
	ctx context.Context,
	token string,
	id value.AuctionID,
	amount decimal.Decimal,
) (entity.BidReceipt, error) {
	if strings.TrimSpace(token) == "" {
		return entity.BidReceipt{}, failure.NewUnauthorizedError(
			"bid without session",
			failure.WithCode(errcodes.SignInRequired),
			failure.WithDescription(MessageSignInRequired),
		)
	}

	a, ok := s.auctions.Get(id)
	if !ok {
		return entity.BidReceipt{}, failure.NewNotFoundError(
			"auction "+id.String()+" not found",
			failure.WithCode(errcodes.AuctionNotFound),
			failure.WithDescription("auction not found"),
		)
	}

	if a.Ended(s.clock.Now()) {
		return entity.BidReceipt{}, failure.NewUnprocessableEntityError(
			"auction "+id.String()+" has ended",
			failure.WithCode(errcodes.AuctionEnded),
			failure.WithDescription("this auction has ended"),
		)
	}

	if !amount.IsPositive() {
		return entity.BidReceipt{}, failure.NewInvalidArgumentError(
			"non-positive bid amount "+amount.String(),
			failure.WithCode(errcodes.InvalidBidAmount),
			failure.WithDescription("bid amount must be positive"),
		)
	}

	logger(ctx).Info(
		"bid placed",
		slog.String(logx.FieldAuctionID, id.String()),
		slog.String(logx.FieldAuctionName, a.Name),
		slog.String("amount", amount.String()),
		slog.Duration("remaining", a.Remaining(s.clock.Now()).Round(time.Second)),
	)

	return entity.BidReceipt{Success: true, Message: MessageBidPlaced}, nil
}
