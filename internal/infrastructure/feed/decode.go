package feed

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"bidhub/internal/domain"
	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/value"
	"bidhub/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// envelope is the object form of the feed. auctions is the only field that
// is looked at.
type envelope struct {
	Auctions jsoniter.RawMessage `json:"auctions"`
}

// Decode accepts a non-empty JSON array of auction records, either bare or
// under "auctions". Any other shape, an invalid record or a repeated id fails
// with MalformedResponse.
func Decode(body []byte) (entity.AuctionList, error) {
	candidate, err := candidateArray(body)
	if err != nil {
		return nil, err
	}

	var elements []jsoniter.RawMessage
	if err := json.Unmarshal(candidate, &elements); err != nil {
		return nil, malformed(err, "auction array")
	}

	if len(elements) == 0 {
		return nil, domain.NewError(errcodes.MalformedResponse, "empty auction list")
	}

	list := make(entity.AuctionList, 0, len(elements))
	seen := make(map[value.AuctionID]struct{}, len(elements))

	for i, element := range elements {
		if firstByte(element) != '{' {
			return nil, domain.NewError(errcodes.MalformedResponse, fmt.Sprintf("element %d is not an object", i))
		}

		var a entity.Auction
		if err := json.Unmarshal(element, &a); err != nil {
			return nil, malformed(err, fmt.Sprintf("element %d", i))
		}

		if a.Status == "" {
			a.Status = value.StatusActive
		}

		if err := a.Validate(); err != nil {
			return nil, malformed(err, fmt.Sprintf("element %d", i))
		}

		if _, dup := seen[a.ID]; dup {
			return nil, domain.NewError(errcodes.MalformedResponse, "duplicate auction id "+a.ID.String())
		}

		seen[a.ID] = struct{}{}
		list = append(list, a)
	}

	return list, nil
}

func candidateArray(body []byte) ([]byte, error) {
	switch firstByte(body) {
	case '[':
		return body, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, malformed(err, "feed object")
		}

		if firstByte(env.Auctions) != '[' {
			return nil, domain.NewError(errcodes.MalformedResponse, `object without an "auctions" array`)
		}

		return env.Auctions, nil
	default:
		return nil, domain.NewError(errcodes.MalformedResponse, "feed body is neither an array nor an object")
	}
}

func firstByte(b []byte) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}

	return b[0]
}

func malformed(err error, what string) error {
	return domain.WrapError(err, errcodes.MalformedResponse, "malformed "+what)
}
