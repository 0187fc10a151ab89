package value

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"bidhub/pkg/errcodes"
)

// AuctionID identifies an auction record within a snapshot. Feeds send it
// either as a JSON string or as an integer.
type AuctionID string

func (id AuctionID) String() string {
	return string(id)
}

func ParseAuctionID(s string) (AuctionID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", failure.NewInvalidArgumentError(
			"empty auction id",
			failure.WithCode(errcodes.InvalidAuctionID),
			failure.WithDescription("auction id is required"),
		)
	}

	return AuctionID(s), nil
}

func (id *AuctionID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("auction id: %w", err)
		}

		*id = AuctionID(s)

		return nil
	default:
		if _, err := strconv.ParseInt(string(b), 10, 64); err != nil {
			return fmt.Errorf("auction id %s: not a string or integer", b)
		}

		*id = AuctionID(b)

		return nil
	}
}

func (id AuctionID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(id))), nil
}
