package probe_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"bidhub/pkg/probe"
)

func TestServer_Handler(t *testing.T) {
	t.Parallel()

	var ready atomic.Bool

	probeServer := probe.NewServer(":0", probe.Options{
		Name:    "bidhub",
		Version: "v0.1.0",
		Ready:   ready.Load,
	})

	srv := httptest.NewServer(probeServer.Handler())
	defer srv.Close()

	testCases := []struct {
		name       string
		endpoint   string
		ready      bool
		statusCode int
		body       string
	}{
		{
			name:       "health does not depend on readiness",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			body:       `{"name":"bidhub","version":"v0.1.0"}`,
		},
		{
			name:       "not ready before first snapshot",
			endpoint:   "/ready",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"name":"bidhub","version":"v0.1.0"}`,
		},
		{
			name:       "ready after first snapshot",
			endpoint:   "/ready",
			ready:      true,
			statusCode: http.StatusOK,
			body:       `{"name":"bidhub","version":"v0.1.0"}`,
		},
		{
			name:       "invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			ready.Store(tc.ready)

			resp, err := http.Get(srv.URL + tc.endpoint) //nolint:noctx
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)
			rq.Equal(tc.body, string(bodyBytes))
		})
	}
}

func TestServer_Run(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probeServer := probe.NewServer(":10001", probe.Options{Name: "bidhub", Version: "v0.1.0"})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	// Wait for server to start.
	time.Sleep(time.Second)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://:10001/ready", http.NoBody)
	rq.NoError(err)

	resp, err := http.DefaultClient.Do(req)
	rq.NoError(err)
	resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)

	cancel()

	rq.NoError(g.Wait())
}
