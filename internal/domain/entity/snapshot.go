package entity

import (
	"time"

	"bidhub/internal/domain/value"
)

// Snapshot is the currently published auction list together with the poll
// that produced it.
type Snapshot struct {
	Seq       uint64
	State     value.LoadState
	Auctions  AuctionList
	FetchedAt time.Time
}

func (s Snapshot) Resolved() bool {
	return s.State == value.LoadStateResolved
}
