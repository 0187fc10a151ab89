package listing_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/pkg/tests"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

func auction(id, name string, category value.Category, endIn time.Duration, status value.Status) entity.Auction {
	return entity.Auction{
		ID:           value.AuctionID(id),
		Name:         name,
		Category:     category,
		CurrentPrice: decimal.NewFromInt(100),
		NextBid:      decimal.NewFromInt(110),
		EndTime:      now.Add(endIn),
		Status:       status,
	}
}

func fixture() entity.AuctionList {
	return entity.AuctionList{
		auction("1", "Vintage Rolex Submariner", value.CategoryWatches, 2*time.Hour, value.StatusActive),
		auction("2", "Rare Pokémon Card Collection", value.CategoryCollectibles, 3*time.Hour, value.StatusActive),
		auction("3", "Antique Chinese Vase", value.CategoryArtAndAntiques, -time.Hour, value.StatusEnded),
		auction("4", "Classic Gibson Guitar", value.CategoryMusicalInstruments, time.Hour, value.StatusActive),
		auction("5", "Luxury Handbag Collection", value.CategoryFashion, 15*time.Minute, value.StatusEndingSoon),
		auction("6", "Vintage Camera Equipment", value.CategoryElectronics, 5*time.Hour, value.StatusActive),
	}
}

func ids(list entity.AuctionList) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID.String())
	}

	return out
}

func TestSortForDisplay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		list entity.AuctionList
		want []string
	}{
		{
			name: "fallback catalogue",
			list: fixture(),
			want: []string{"5", "4", "1", "2", "6", "3"},
		},
		{
			name: "expired records go last ordered by end time",
			list: entity.AuctionList{
				auction("a", "a", value.CategoryWatches, -time.Minute, value.StatusActive),
				auction("b", "b", value.CategoryWatches, time.Minute, value.StatusActive),
				auction("c", "c", value.CategoryWatches, -time.Hour, value.StatusActive),
			},
			want: []string{"b", "c", "a"},
		},
		{
			name: "end time equal to now counts as expired",
			list: entity.AuctionList{
				auction("now", "now", value.CategoryWatches, 0, value.StatusActive),
				auction("later", "later", value.CategoryWatches, time.Second, value.StatusActive),
			},
			want: []string{"later", "now"},
		},
		{
			name: "ties keep input order",
			list: entity.AuctionList{
				auction("x", "x", value.CategoryWatches, time.Minute, value.StatusActive),
				auction("y", "y", value.CategoryWatches, time.Minute, value.StatusActive),
				auction("z", "z", value.CategoryWatches, time.Minute, value.StatusActive),
			},
			want: []string{"x", "y", "z"},
		},
		{
			name: "ended tag does not move a running record",
			list: entity.AuctionList{
				auction("tagged", "tagged", value.CategoryWatches, time.Hour, value.StatusEnded),
				auction("soon", "soon", value.CategoryWatches, time.Minute, value.StatusActive),
			},
			want: []string{"soon", "tagged"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			input := tc.list.Clone()
			got := listing.SortForDisplay(tc.list, now)

			rq.Equal(tc.want, ids(got))
			rq.Equal(input, tc.list, "input must not be reordered")
		})
	}
}

func TestSortForDisplay_Partition(t *testing.T) {
	t.Parallel()

	r := tests.NewRandomizer()

	for range 200 {
		list := make(entity.AuctionList, r.Intn(20))
		for i := range list {
			list[i] = auction(strconv.Itoa(i), "item", value.CategoryWatches, r.Duration(48*time.Hour), value.StatusActive)
		}

		got := listing.SortForDisplay(list, now)

		require.Len(t, got, len(list), "seed %d", r.Seed)

		seenExpired := false

		for i, a := range got {
			if a.Expired(now) {
				seenExpired = true
			} else {
				require.False(t, seenExpired, "running record after expired one, seed %d", r.Seed)
			}

			if i > 0 && got[i-1].Expired(now) == a.Expired(now) {
				require.False(t, a.EndTime.Before(got[i-1].EndTime), "end times decrease, seed %d", r.Seed)
			}
		}
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		term     string
		category value.Category
		want     []string
	}{
		{name: "everything", term: "", category: value.CategoryAll, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "case insensitive term", term: "VINTAGE", category: value.CategoryAll, want: []string{"1", "6"}},
		{name: "category only", term: "", category: value.CategoryFashion, want: []string{"5"}},
		{name: "term and category", term: "vintage", category: value.CategoryWatches, want: []string{"1"}},
		{name: "ended records are kept", term: "vase", category: value.CategoryAll, want: []string{"3"}},
		{name: "no match", term: "spaceship", category: value.CategoryAll, want: []string{}},
		{name: "unicode name", term: "pokémon", category: value.CategoryCollectibles, want: []string{"2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			list := fixture()
			got := listing.Filter(list, tc.term, tc.category)

			rq.Equal(tc.want, ids(got))
			rq.Equal(got, listing.Filter(got, tc.term, tc.category), "filter is idempotent")
			rq.Equal(fixture(), list)
		})
	}
}

func TestFilter_CommutesWithSort(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	list := fixture()

	rq.Equal(
		listing.SortForDisplay(listing.Filter(list, "collection", value.CategoryAll), now),
		listing.Filter(listing.SortForDisplay(list, now), "collection", value.CategoryAll),
	)
}

func TestActiveCount(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	rq.Equal(5, listing.ActiveCount(fixture(), now))
	rq.Equal(0, listing.ActiveCount(nil, now))

	tagged := entity.AuctionList{auction("t", "t", value.CategoryWatches, time.Hour, value.StatusEnded)}
	rq.Equal(1, listing.ActiveCount(tagged, now), "status tag is ignored")
}

func TestCountdown(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		left   time.Duration
		want   entity.Countdown
		render string
	}{
		{name: "zero", left: 0, want: entity.Countdown{Ended: true}, render: "Auction Ended"},
		{name: "past", left: -time.Minute, want: entity.Countdown{Ended: true}, render: "Auction Ended"},
		{name: "sub second", left: 500 * time.Millisecond, want: entity.Countdown{}, render: "0m 0s"},
		{
			name:   "one hour one minute one second",
			left:   3661 * time.Second,
			want:   entity.Countdown{Hours: 1, Minutes: 1, Seconds: 1},
			render: "1h 1m 1s",
		},
		{
			name:   "about a day",
			left:   90000 * time.Second,
			want:   entity.Countdown{Days: 1, Hours: 1},
			render: "1d 1h 0m 0s",
		},
		{
			name:   "exactly one day",
			left:   24 * time.Hour,
			want:   entity.Countdown{Days: 1},
			render: "1d 0h 0m 0s",
		},
		{
			name:   "fraction is floored",
			left:   59*time.Second + 999*time.Millisecond,
			want:   entity.Countdown{Seconds: 59},
			render: "0m 59s",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			got := listing.Countdown(now.Add(tc.left), now)

			rq.Equal(tc.want, got)
			rq.Equal(tc.render, got.String())
		})
	}
}

func TestUrgencyOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		left time.Duration
		want value.Urgency
	}{
		{left: -time.Second, want: value.UrgencyNone},
		{left: 0, want: value.UrgencyNone},
		{left: 4 * time.Minute, want: value.UrgencyHigh},
		{left: 5 * time.Minute, want: value.UrgencyMedium},
		{left: 14 * time.Minute, want: value.UrgencyMedium},
		{left: 15 * time.Minute, want: value.UrgencyLow},
	}

	for _, tc := range testCases {
		t.Run(tc.left.String(), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, listing.UrgencyOf(now.Add(tc.left), now))
		})
	}
}
