package value

import (
	"git.appkode.ru/pub/go/failure"

	"bidhub/pkg/errcodes"
)

// View is the top level screen selection.
type View string

const (
	ViewAuctions   View = "auctions"
	ViewHowItWorks View = "how_it_works"
)

func (v View) String() string {
	return string(v)
}

func (v View) Title() string {
	if v == ViewHowItWorks {
		return "How It Works"
	}

	return "Auctions"
}

// Next toggles between the two views; unknown values fall back to auctions.
func (v View) Next() View {
	if v == ViewAuctions {
		return ViewHowItWorks
	}

	return ViewAuctions
}

func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewAuctions:
		return ViewAuctions, nil
	case ViewHowItWorks:
		return ViewHowItWorks, nil
	default:
		return "", failure.NewInvalidArgumentError(
			"unknown view "+s,
			failure.WithCode(errcodes.InvalidView),
		)
	}
}
