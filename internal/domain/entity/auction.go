package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"bidhub/internal/domain/value"
)

// Auction is one listing record as delivered by the feed.
type Auction struct {
	ID           value.AuctionID `json:"id"`
	Name         string          `json:"name"`
	Category     value.Category  `json:"category"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	NextBid      decimal.Decimal `json:"next_bid"`
	Bids         int             `json:"bids"`
	EndTime      time.Time       `json:"end_time"`
	ImageURL     string          `json:"image_url,omitempty"`
	Status       value.Status    `json:"status"`
}

// Expired reports whether the end time is not in the future.
func (a Auction) Expired(now time.Time) bool {
	return !a.EndTime.After(now)
}

// Ended is the display notion of "ended": the clock ran out or the feed
// tagged the record as ended.
func (a Auction) Ended(now time.Time) bool {
	return a.Expired(now) || a.Status == value.StatusEnded
}

// Live reports whether the record counts toward the active total. The status
// tag is ignored.
func (a Auction) Live(now time.Time) bool {
	return a.EndTime.After(now)
}

func (a Auction) Remaining(now time.Time) time.Duration {
	if a.Expired(now) {
		return 0
	}

	return a.EndTime.Sub(now)
}

func (a Auction) Validate() error {
	switch {
	case strings.TrimSpace(a.ID.String()) == "":
		return fmt.Errorf("auction: id is empty")
	case strings.TrimSpace(a.Name) == "":
		return fmt.Errorf("auction %s: name is empty", a.ID)
	case a.EndTime.IsZero():
		return fmt.Errorf("auction %s: end time is missing", a.ID)
	case a.Bids < 0:
		return fmt.Errorf("auction %s: negative bid count %d", a.ID, a.Bids)
	case a.CurrentPrice.IsNegative():
		return fmt.Errorf("auction %s: negative current price %s", a.ID, a.CurrentPrice)
	case !a.NextBid.GreaterThan(a.CurrentPrice):
		return fmt.Errorf("auction %s: next bid %s not above current price %s", a.ID, a.NextBid, a.CurrentPrice)
	}

	return nil
}

// AuctionList is replaced wholesale on every poll and never mutated in place.
type AuctionList []Auction

func (l AuctionList) Clone() AuctionList {
	if l == nil {
		return nil
	}

	out := make(AuctionList, len(l))
	copy(out, l)

	return out
}

func (l AuctionList) Find(id value.AuctionID) (Auction, bool) {
	for _, a := range l {
		if a.ID == id {
			return a, true
		}
	}

	return Auction{}, false
}
