package feed_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"bidhub/internal/domain"
	"bidhub/internal/domain/value"
	"bidhub/internal/infrastructure/feed"
	"bidhub/pkg/errcodes"
)

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	want := feed.FallbackAuctions(feedStart)

	body, err := jsoniter.Marshal(map[string]any{"auctions": want})
	rq.NoError(err)

	got, err := feed.Decode(body)
	rq.NoError(err)

	requireSameAuctions(t, want, got)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		body       string
		wantErr    bool
		wantStatus value.Status
	}{
		{
			name:       "missing status means active",
			body:       `[{"id":"a","name":"x","current_price":1,"next_bid":2,"end_time":"2026-03-01T13:00:00Z"}]`,
			wantStatus: value.StatusActive,
		},
		{
			name:       "unknown category is kept",
			body:       `[{"id":"a","name":"x","category":"Cars","current_price":1,"next_bid":2,"end_time":"2026-03-01T13:00:00Z","status":"ending_soon"}]`,
			wantStatus: value.StatusEndingSoon,
		},
		{name: "whitespace before array", body: "  \n [{\"id\":\"a\",\"name\":\"x\",\"current_price\":1,\"next_bid\":2,\"end_time\":\"2026-03-01T13:00:00Z\"}]", wantStatus: value.StatusActive},
		{name: "empty body", body: ``, wantErr: true},
		{name: "null", body: `null`, wantErr: true},
		{name: "auctions null", body: `{"auctions":null}`, wantErr: true},
		{name: "missing end time", body: `[{"id":"a","name":"x","current_price":1,"next_bid":2}]`, wantErr: true},
		{name: "bad end time", body: `[{"id":"a","name":"x","current_price":1,"next_bid":2,"end_time":"tomorrow"}]`, wantErr: true},
		{name: "missing id", body: `[{"name":"x","current_price":1,"next_bid":2,"end_time":"2026-03-01T13:00:00Z"}]`, wantErr: true},
		{name: "negative bids", body: `[{"id":"a","name":"x","bids":-1,"current_price":1,"next_bid":2,"end_time":"2026-03-01T13:00:00Z"}]`, wantErr: true},
		{name: "array of arrays", body: `[[1,2]]`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			got, err := feed.Decode([]byte(tc.body))
			if tc.wantErr {
				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(errcodes.MalformedResponse, code)

				return
			}

			rq.NoError(err)
			rq.Len(got, 1)
			rq.Equal(tc.wantStatus, got[0].Status)
		})
	}
}
