// Package listing turns an auction snapshot into what users see: display
// order, search and category filtering, the active total and countdowns.
// Every function takes the wall clock as an argument and never mutates its
// input.
package listing

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
)

// SortForDisplay puts running auctions first, soonest end first, followed by
// expired ones, also by end time. Equal end times keep their input order.
func SortForDisplay(list entity.AuctionList, now time.Time) entity.AuctionList {
	out := list.Clone()

	slices.SortStableFunc(out, func(a, b entity.Auction) int {
		aExpired, bExpired := a.Expired(now), b.Expired(now)

		switch {
		case aExpired && !bExpired:
			return 1
		case !aExpired && bExpired:
			return -1
		default:
			return a.EndTime.Compare(b.EndTime)
		}
	})

	return out
}

// Filter keeps records of the selected category whose name contains term,
// ignoring case. Order is preserved.
func Filter(list entity.AuctionList, term string, category value.Category) entity.AuctionList {
	term = strings.ToLower(term)

	return lo.Filter(list, func(a entity.Auction, _ int) bool {
		return category.Matches(a.Category) && strings.Contains(strings.ToLower(a.Name), term)
	})
}

// ActiveCount counts records whose end time is still ahead, whatever their
// status tag says.
func ActiveCount(list entity.AuctionList, now time.Time) int {
	return lo.CountBy(list, func(a entity.Auction) bool {
		return a.Live(now)
	})
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

func Countdown(endTime, now time.Time) entity.Countdown {
	if !endTime.After(now) {
		return entity.Countdown{Ended: true}
	}

	total := int(endTime.Sub(now) / time.Second)

	return entity.Countdown{
		Days:    total / secondsPerDay,
		Hours:   total % secondsPerDay / secondsPerHour,
		Minutes: total % secondsPerHour / secondsPerMinute,
		Seconds: total % secondsPerMinute,
	}
}

const (
	highUrgencyWithin   = 5 * time.Minute
	mediumUrgencyWithin = 15 * time.Minute
)

func UrgencyOf(endTime, now time.Time) value.Urgency {
	left := endTime.Sub(now)

	switch {
	case left <= 0:
		return value.UrgencyNone
	case left < highUrgencyWithin:
		return value.UrgencyHigh
	case left < mediumUrgencyWithin:
		return value.UrgencyMedium
	default:
		return value.UrgencyLow
	}
}
