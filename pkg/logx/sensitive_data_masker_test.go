package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bidhub/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"email":"a@b.c","password":"abc123"}`),
			output: []byte(`{"email":"[MASKED]","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Session token",
			input:  []byte(`{"token":"fake-jwt-token","user":{"name":"Demo User"}}`),
			output: []byte(`{"token":"[MASKED]","user":{"name":"Demo User"}}`),
		},
		{
			name:   "Registration form",
			input:  []byte(`{"fullName": "Jane Doe", "email": "jane@doe.com", "password": "x"}`),
			output: []byte(`{"fullName": "[MASKED]", "email": "[MASKED]", "password": "[MASKED]"}`),
		},
		{
			name:   "Bearer header",
			input:  []byte("GET /v1/auctions HTTP/1.1\r\nAuthorization: Bearer abc\r\n"),
			output: []byte("GET /v1/auctions HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
