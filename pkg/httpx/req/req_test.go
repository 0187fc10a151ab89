package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"bidhub/pkg/errcodes"
	"bidhub/pkg/httpx/req"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestRead(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"email":"demo@bidhub.local","password":"secret"}`},
		{name: "broken json", body: `{"email":`, wantErr: true},
		{name: "invalid email", body: `{"email":"nope","password":"secret"}`, wantErr: true},
		{name: "missing password", body: `{"email":"demo@bidhub.local"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(tc.body))

			var dest loginRequest

			err := req.Read(r, &dest)
			if tc.wantErr {
				rq.True(failure.IsInvalidArgumentError(err))
				rq.Equal(errcodes.ValidationError, failure.Code(err))

				return
			}

			rq.NoError(err)
			rq.Equal("demo@bidhub.local", dest.Email)
		})
	}
}
