package httpx

import (
	"context"
	"errors"
)

var ErrStaticTokenRejected = errors.New("static bearer token rejected")

// StaticTokenAuthenticator serves a pre-shared bearer token. It cannot obtain
// a new one, so a 401 from upstream surfaces as ErrStaticTokenRejected
// instead of a second attempt.
type StaticTokenAuthenticator struct {
	token string
}

func NewStaticTokenAuthenticator(token string) StaticTokenAuthenticator {
	return StaticTokenAuthenticator{token: token}
}

func (a StaticTokenAuthenticator) Authenticate(context.Context) error {
	return ErrStaticTokenRejected
}

func (a StaticTokenAuthenticator) BearerToken() string {
	return a.token
}
