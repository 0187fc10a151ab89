// Package tui renders the auction listing in a terminal with bubbletea.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// DemoEmail is used by the sign-in key; the stub accepts any address.
const DemoEmail = "demo@bidhub.local"

type AuctionStore interface {
	Get(id value.AuctionID) (entity.Auction, bool)
	Present(q listing.Query, now time.Time) listing.View
}

type Refresher interface {
	Refresh(ctx context.Context) (entity.Snapshot, bool)
}

type Accounts interface {
	Login(ctx context.Context, email, password string) (entity.Session, error)
	PlaceBid(ctx context.Context, token string, id value.AuctionID, amount decimal.Decimal) (entity.BidReceipt, error)
}

type (
	tickMsg         time.Time
	ticksClosedMsg  struct{}
	refreshedMsg    struct{ applied bool }
	signedInMsg     struct{ session entity.Session }
	bidPlacedMsg    struct{ receipt entity.BidReceipt }
	actionFailedMsg struct{ err error }
)

// Model is the whole screen state. Countdowns advance only on ticks from the
// shared hub subscription.
type Model struct {
	ctx       context.Context
	store     AuctionStore
	refresher Refresher
	accounts  Accounts
	ticks     <-chan time.Time
	guide     entity.Guide

	now        time.Time
	view       value.View
	search     string
	searching  bool
	categories []value.Category
	category   int
	selected   int
	session    *entity.Session
	status     string
	width      int
}

func NewModel(
	ctx context.Context,
	store AuctionStore,
	refresher Refresher,
	accounts Accounts,
	ticks <-chan time.Time,
	now time.Time,
) Model {
	return Model{
		ctx:        ctx,
		store:      store,
		refresher:  refresher,
		accounts:   accounts,
		ticks:      ticks,
		guide:      listing.Guide(),
		now:        now,
		view:       value.ViewAuctions,
		categories: value.Categories(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

func waitForTick(ticks <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ticks
		if !ok {
			return ticksClosedMsg{}
		}

		return tickMsg(t)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		return m, waitForTick(m.ticks)
	case ticksClosedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case refreshedMsg:
		if msg.applied {
			m.status = "Auctions refreshed"
		} else {
			m.status = "A newer update is already shown"
		}

		return m, nil
	case signedInMsg:
		m.session = &msg.session
		m.status = "Signed in as " + msg.session.User.Name

		return m, nil
	case bidPlacedMsg:
		m.status = msg.receipt.Message
		return m, nil
	case actionFailedMsg:
		m.status = errorMessage(msg.err)
		return m, nil
	}

	return m, nil
}

// Listing is what the auctions view currently shows.
func (m Model) Listing() listing.View {
	return m.store.Present(listing.Query{Search: m.search, Category: m.Category()}, m.now)
}

func (m Model) Category() value.Category {
	return m.categories[m.category]
}

func (m Model) CurrentView() value.View {
	return m.view
}

func (m Model) Search() string {
	return m.search
}

func (m Model) Status() string {
	return m.status
}

func (m Model) SignedIn() bool {
	return m.session != nil
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		_, applied := m.refresher.Refresh(m.ctx)
		return refreshedMsg{applied: applied}
	}
}

func (m Model) signIn() tea.Cmd {
	return func() tea.Msg {
		session, err := m.accounts.Login(m.ctx, DemoEmail, "demo")
		if err != nil {
			return actionFailedMsg{err: err}
		}

		return signedInMsg{session: session}
	}
}

// bid offers the card's next bid. Anonymous users get the sign-in prompt
// from the service.
func (m Model) bid(id value.AuctionID) tea.Cmd {
	token := ""
	if m.session != nil {
		token = m.session.Token
	}

	return func() tea.Msg {
		amount := decimal.Zero
		if a, ok := m.store.Get(id); ok {
			amount = a.NextBid
		}

		receipt, err := m.accounts.PlaceBid(m.ctx, token, id, amount)
		if err != nil {
			return actionFailedMsg{err: err}
		}

		return bidPlacedMsg{receipt: receipt}
	}
}
