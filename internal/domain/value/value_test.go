package value_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"bidhub/internal/domain/value"
	"bidhub/pkg/errcodes"
)

func TestAuctionID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		want    value.AuctionID
		wantErr bool
	}{
		{name: "string", input: `"abc-1"`, want: "abc-1"},
		{name: "integer", input: `6`, want: "6"},
		{name: "null", input: `null`, want: ""},
		{name: "float", input: `1.5`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			var id value.AuctionID
			err := jsoniter.Unmarshal([]byte(tc.input), &id)

			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, id)
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	c, err := value.ParseCategory("")
	rq.NoError(err)
	rq.Equal(value.CategoryAll, c)

	c, err = value.ParseCategory("art & antiques")
	rq.NoError(err)
	rq.Equal(value.CategoryArtAndAntiques, c)

	_, err = value.ParseCategory("Cars")
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
	rq.Equal(errcodes.InvalidCategory, failure.Code(err))

	rq.Equal(value.CategoryAll, value.Categories()[0])
	rq.Len(value.Categories(), 7)
	rq.True(value.CategoryAll.Matches(value.CategoryFashion))
	rq.True(value.CategoryFashion.Matches(value.CategoryFashion))
	rq.False(value.CategoryWatches.Matches(value.CategoryFashion))
}

func TestParseStatus(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	s, err := value.ParseStatus("")
	rq.NoError(err)
	rq.Equal(value.StatusActive, s)

	s, err = value.ParseStatus("ending_soon")
	rq.NoError(err)
	rq.Equal(value.StatusEndingSoon, s)

	_, err = value.ParseStatus("paused")
	rq.Error(err)
}

func TestView_Next(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	rq.Equal(value.ViewHowItWorks, value.ViewAuctions.Next())
	rq.Equal(value.ViewAuctions, value.ViewHowItWorks.Next())

	v, err := value.ParseView("how_it_works")
	rq.NoError(err)
	rq.Equal(value.ViewHowItWorks, v)

	_, err = value.ParseView("settings")
	rq.Error(err)
}
