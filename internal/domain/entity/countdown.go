package entity

import (
	"strconv"
	"strings"
)

const CountdownEndedLabel = "Auction Ended"

type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Ended   bool `json:"ended"`
}

// Tokens renders days only when non-zero, hours when non-zero or when days
// are shown, minutes and seconds always.
func (c Countdown) Tokens() []string {
	if c.Ended {
		return nil
	}

	tokens := make([]string, 0, 4)
	if c.Days > 0 {
		tokens = append(tokens, strconv.Itoa(c.Days)+"d")
	}

	if c.Hours > 0 || c.Days > 0 {
		tokens = append(tokens, strconv.Itoa(c.Hours)+"h")
	}

	return append(tokens, strconv.Itoa(c.Minutes)+"m", strconv.Itoa(c.Seconds)+"s")
}

func (c Countdown) String() string {
	if c.Ended {
		return CountdownEndedLabel
	}

	return strings.Join(c.Tokens(), " ")
}
