package value

import (
	"git.appkode.ru/pub/go/failure"

	"bidhub/pkg/errcodes"
)

// Status is the tag the feed attaches to a record. It may disagree with the
// end time; see entity.Auction.Ended.
type Status string

const (
	StatusActive     Status = "active"
	StatusEndingSoon Status = "ending_soon"
	StatusEnded      Status = "ended"
)

func (s Status) String() string {
	return string(s)
}

// ParseStatus maps an empty tag to active and rejects unknown tags.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "", StatusActive:
		return StatusActive, nil
	case StatusEndingSoon, StatusEnded:
		return Status(s), nil
	default:
		return "", failure.NewInvalidArgumentError(
			"unknown status "+s,
			failure.WithCode(errcodes.InvalidStatus),
		)
	}
}

func (s *Status) UnmarshalText(b []byte) error {
	status, err := ParseStatus(string(b))
	if err != nil {
		return err
	}

	*s = status

	return nil
}
