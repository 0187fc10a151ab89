package listing

import (
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
	"bidhub/pkg/lox"
)

const (
	BadgeEnded      = "ENDED"
	BadgeEndingSoon = "ENDING SOON"

	ActionBid   = "View & Bid"
	ActionEnded = "Auction Ended"

	placeholderImageURL = "https://placehold.co/600x400/e2e8f0/64748b?text="
)

type Query struct {
	Search   string
	Category value.Category
}

// Card is one rendered auction.
type Card struct {
	ID             value.AuctionID
	Name           string
	Category       value.Category
	CurrentPrice   string
	NextBid        string
	Bids           int
	EndTime        time.Time
	Countdown      entity.Countdown
	Ended          bool
	Badge          string
	Urgency        value.Urgency
	ImageURL       string
	PlaceholderURL string
	ActionLabel    string
}

type View struct {
	State       value.LoadState
	Cards       []Card
	ActiveCount int
	Total       int
}

// Present filters the snapshot by q, orders it for display and renders the
// cards. The active count is taken over the filtered records.
func Present(snapshot entity.Snapshot, q Query, now time.Time) View {
	if q.Category == "" {
		q.Category = value.CategoryAll
	}

	return Render(snapshot, Filter(snapshot.Auctions, q.Search, q.Category), now)
}

// Render builds the view from records already filtered out of snapshot.
func Render(snapshot entity.Snapshot, filtered entity.AuctionList, now time.Time) View {
	sorted := SortForDisplay(filtered, now)

	return View{
		State: snapshot.State,
		Cards: lox.Map(sorted, func(a entity.Auction) Card {
			return CardFor(a, now)
		}),
		ActiveCount: ActiveCount(sorted, now),
		Total:       len(snapshot.Auctions),
	}
}

func CardFor(a entity.Auction, now time.Time) Card {
	ended := a.Ended(now)

	card := Card{
		ID:             a.ID,
		Name:           a.Name,
		Category:       a.Category,
		CurrentPrice:   FormatPrice(a.CurrentPrice),
		NextBid:        FormatPrice(a.NextBid),
		Bids:           a.Bids,
		EndTime:        a.EndTime,
		Countdown:      Countdown(a.EndTime, now),
		Ended:          ended,
		Urgency:        UrgencyOf(a.EndTime, now),
		ImageURL:       a.ImageURL,
		PlaceholderURL: PlaceholderImageURL(a.Name),
		ActionLabel:    ActionBid,
	}

	switch {
	case ended:
		card.Badge = BadgeEnded
		card.ActionLabel = ActionEnded
		card.Urgency = value.UrgencyNone
	case a.Status == value.StatusEndingSoon:
		card.Badge = BadgeEndingSoon
	}

	if card.ImageURL == "" {
		card.ImageURL = card.PlaceholderURL
	}

	return card
}

// FormatPrice renders a price in dollars with thousands separators.
func FormatPrice(d decimal.Decimal) string {
	return "$" + humanize.Commaf(d.InexactFloat64())
}

// PlaceholderImageURL is shown when a record has no image or it fails to load.
// Every whitespace rune in the name becomes a plus.
func PlaceholderImageURL(name string) string {
	return placeholderImageURL + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '+'
		}

		return r
	}, name)
}
