package feed_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/infrastructure/feed"
	"bidhub/pkg/contextx"
	"bidhub/pkg/errcodes"
	"bidhub/pkg/logx"
)

var feedStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

type metricsMock struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *metricsMock) FeedFetched(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outcomes = append(m.outcomes, outcome)
}

func newMockClock() *clock.Mock {
	c := clock.NewMock()
	c.Set(feedStart)

	return c
}

func requireSameAuctions(t *testing.T, want, got entity.AuctionList) {
	t.Helper()
	rq := require.New(t)

	rq.Len(got, len(want))

	for i := range want {
		rq.Equal(want[i].ID, got[i].ID)
		rq.Equal(want[i].Name, got[i].Name)
		rq.Equal(want[i].Category, got[i].Category)
		rq.True(want[i].CurrentPrice.Equal(got[i].CurrentPrice), "current price of %s", want[i].ID)
		rq.True(want[i].NextBid.Equal(got[i].NextBid), "next bid of %s", want[i].ID)
		rq.Equal(want[i].Bids, got[i].Bids)
		rq.True(want[i].EndTime.Equal(got[i].EndTime), "end time of %s", want[i].ID)
		rq.Equal(want[i].ImageURL, got[i].ImageURL)
		rq.Equal(want[i].Status, got[i].Status)
	}
}

func TestLoader_Fetch(t *testing.T) {
	t.Parallel()

	const validRecord = `{"id":7,"name":"Signed Baseball","category":"Collectibles","current_price":410,"next_bid":425,` +
		`"bids":4,"end_time":"2026-03-01T13:00:00Z","image_url":"https://example.com/ball.jpg","status":"active"}`

	const otherRecord = `{"id":"x-2","name":"Pocket Watch","category":"Watches","current_price":"99.5","next_bid":"105",` +
		`"bids":0,"end_time":"2026-03-01T11:00:00Z","status":"ended"}`

	testCases := []struct {
		name         string
		status       int
		body         string
		wantFallback bool
		wantOutcome  string
		wantIDs      []string
	}{
		{
			name:        "bare array",
			status:      http.StatusOK,
			body:        "[" + validRecord + "," + otherRecord + "]",
			wantOutcome: "ok",
			wantIDs:     []string{"7", "x-2"},
		},
		{
			name:        "nested under auctions keeps source order",
			status:      http.StatusOK,
			body:        `{"total":2,"auctions":[` + otherRecord + "," + validRecord + `]}`,
			wantOutcome: "ok",
			wantIDs:     []string{"x-2", "7"},
		},
		{
			name:         "empty array",
			status:       http.StatusOK,
			body:         `[]`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "empty nested array",
			status:       http.StatusOK,
			body:         `{"auctions":[]}`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "object without auctions",
			status:       http.StatusOK,
			body:         `{"items":[` + validRecord + `]}`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "auctions is not an array",
			status:       http.StatusOK,
			body:         `{"auctions":{"id":1}}`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "scalar body",
			status:       http.StatusOK,
			body:         `"auctions"`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "not json",
			status:       http.StatusOK,
			body:         `<html>maintenance</html>`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "non record element",
			status:       http.StatusOK,
			body:         "[" + validRecord + `,42]`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "record breaking next bid rule",
			status:       http.StatusOK,
			body:         `[{"id":1,"name":"x","current_price":10,"next_bid":5,"end_time":"2026-03-01T13:00:00Z"}]`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "unknown status tag",
			status:       http.StatusOK,
			body:         `[{"id":1,"name":"x","current_price":1,"next_bid":5,"end_time":"2026-03-01T13:00:00Z","status":"paused"}]`,
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "duplicate ids",
			status:       http.StatusOK,
			body:         "[" + validRecord + "," + validRecord + "]",
			wantFallback: true,
			wantOutcome:  errcodes.MalformedResponse.String(),
		},
		{
			name:         "server error",
			status:       http.StatusInternalServerError,
			body:         "[" + validRecord + "]",
			wantFallback: true,
			wantOutcome:  errcodes.NetworkFailure.String(),
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			body:         `{"error":"not found"}`,
			wantFallback: true,
			wantOutcome:  errcodes.NetworkFailure.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				rq.Equal("application/json", r.Header.Get("Accept"))
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body)) //nolint:errcheck
			}))
			defer srv.Close()

			m := &metricsMock{}
			loader := feed.NewLoader(srv.URL, feed.WithClock(newMockClock()), feed.WithMetrics(m))

			got := loader.Fetch(context.Background())

			rq.Equal([]string{tc.wantOutcome}, m.outcomes)

			if tc.wantFallback {
				requireSameAuctions(t, feed.FallbackAuctions(feedStart), got)
				return
			}

			gotIDs := make([]string, 0, len(got))
			for _, a := range got {
				gotIDs = append(gotIDs, a.ID.String())
			}

			rq.Equal(tc.wantIDs, gotIDs)
		})
	}
}

func TestLoader_Fetch_TransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()
		rq := require.New(t)

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		m := &metricsMock{}
		loader := feed.NewLoader(url, feed.WithClock(newMockClock()), feed.WithMetrics(m))

		requireSameAuctions(t, feed.FallbackAuctions(feedStart), loader.Fetch(context.Background()))
		rq.Equal([]string{errcodes.NetworkFailure.String()}, m.outcomes)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		rq := require.New(t)

		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		m := &metricsMock{}
		loader := feed.NewLoader(srv.URL,
			feed.WithClock(newMockClock()),
			feed.WithMetrics(m),
			feed.WithTimeout(50*time.Millisecond),
		)

		requireSameAuctions(t, feed.FallbackAuctions(feedStart), loader.Fetch(context.Background()))
		rq.Equal([]string{errcodes.NetworkFailure.String()}, m.outcomes)
	})
}

func TestLoader_Fetch_LogsFailure(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))
	defer srv.Close()

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	feed.NewLoader(srv.URL, feed.WithClock(newMockClock())).Fetch(ctx)

	rq.Contains(buf.String(), `"level":"WARN"`)
	rq.Contains(buf.String(), `"`+logx.FieldErrorCode+`":"MalformedResponse"`)
	rq.Contains(buf.String(), "auction feed unavailable, serving fallback")
}

func TestLoader_BearerToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		token        string
		wantFallback bool
	}{
		{name: "accepted token", token: "feed-secret"},
		{name: "wrong token", token: "stale", wantFallback: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer feed-secret" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}

				w.Write([]byte(`[{"id":1,"name":"x","current_price":1,"next_bid":2,"end_time":"2026-03-01T13:00:00Z"}]`)) //nolint:errcheck
			}))
			defer srv.Close()

			loader := feed.NewLoader(srv.URL,
				feed.WithClock(newMockClock()),
				feed.WithBearerToken(tc.token),
				feed.WithHTTPClient(resty.New()),
			)

			got := loader.Fetch(context.Background())

			if tc.wantFallback {
				rq.Len(got, 6)
				return
			}

			rq.Len(got, 1)
			rq.Equal("x", got[0].Name)
		})
	}
}

func TestLoader_Fallback(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	mockClock := newMockClock()
	loader := feed.NewLoader("http://127.0.0.1:0", feed.WithClock(mockClock))

	first := loader.Fallback()
	first[0].Name = "mutated"

	mockClock.Add(time.Hour)

	second := loader.Fallback()
	rq.Equal("Vintage Rolex Submariner", second[0].Name, "callers get a copy")
	requireSameAuctions(t, feed.FallbackAuctions(feedStart.Add(time.Hour)), second)
}

func TestLoader_Fetch_FallbackFollowsClock(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))
	defer srv.Close()

	mockClock := newMockClock()
	loader := feed.NewLoader(srv.URL, feed.WithClock(mockClock))

	testCases := []struct {
		name   string
		uptime time.Duration
	}{
		{name: "start", uptime: 0},
		{name: "ninety minutes", uptime: 90 * time.Minute},
		{name: "six hours", uptime: 6 * time.Hour},
		{name: "two days", uptime: 48 * time.Hour},
	}

	// Subtests share the clock and run in order.
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			mockClock.Set(feedStart.Add(tc.uptime))
			now := mockClock.Now()

			list := loader.Fetch(context.Background())

			rq.Len(list, 6)
			rq.Equal(5, listing.ActiveCount(list, now))

			vase, ok := list.Find("3")
			rq.True(ok)
			rq.True(vase.Ended(now))
		})
	}
}

func TestFallbackAuctions(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	list := feed.FallbackAuctions(feedStart)

	rq.Len(list, 6)

	for _, a := range list {
		rq.NoError(a.Validate())
	}

	// Exactly the vase has ended.
	rq.Equal(5, listing.ActiveCount(list, feedStart))

	vase, ok := list.Find("3")
	rq.True(ok)
	rq.Equal("Antique Chinese Vase", vase.Name)
	rq.True(vase.Ended(feedStart))

	statuses := map[string]int{}
	for _, a := range list {
		statuses[a.Status.String()]++
	}

	rq.Equal(map[string]int{"active": 4, "ending_soon": 1, "ended": 1}, statuses)
}
