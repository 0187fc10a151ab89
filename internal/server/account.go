package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
	"bidhub/pkg/contextx"
	"bidhub/pkg/errcodes"
	"bidhub/pkg/httpx/reply"
	"bidhub/pkg/httpx/req"
	"bidhub/pkg/rest"
)

type accountService interface {
	Login(ctx context.Context, email, password string) (entity.Session, error)
	Register(ctx context.Context, fullName, email, password string) (entity.Session, error)
	PlaceBid(ctx context.Context, token string, id value.AuctionID, amount decimal.Decimal) (entity.BidReceipt, error)
}

type AccountServer struct {
	accountService accountService
}

func NewAccountServer(accountService accountService) AccountServer {
	return AccountServer{
		accountService: accountService,
	}
}

func (s AccountServer) postV1AuthLogin(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.LoginRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	session, err := s.accountService.Login(ctx, request.Email, request.Password)
	if err != nil {
		return fmt.Errorf("accountService.Login: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(session))

	return nil
}

func (s AccountServer) postV1AuthRegister(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RegisterRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	session, err := s.accountService.Register(ctx, request.FullName, request.Email, request.Password)
	if err != nil {
		return fmt.Errorf("accountService.Register: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTSession(session))

	return nil
}

// postV1AuctionBid checks the session before the body so an anonymous
// caller always gets the sign-in prompt.
func (s AccountServer) postV1AuctionBid(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseAuctionID(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("value.ParseAuctionID: %w", err)
	}

	token, _ := contextx.SessionTokenFromContext(ctx) //nolint:errcheck // anonymous is handled by the service

	var amount decimal.Decimal

	if token != "" {
		var request rest.BidRequest

		if err = req.Read(r, &request); err != nil {
			return fmt.Errorf("req.Read: %w", err)
		}

		amount, err = decimal.NewFromString(request.Amount)
		if err != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("decimal.NewFromString: %w", err),
				failure.WithCode(errcodes.InvalidBidAmount),
				failure.WithDescription("bid amount must be a number"),
			)
		}
	}

	receipt, err := s.accountService.PlaceBid(ctx, token.String(), id, amount)
	if err != nil {
		return fmt.Errorf("accountService.PlaceBid: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.BidReceipt{
		Success: receipt.Success,
		Message: receipt.Message,
	})

	return nil
}
