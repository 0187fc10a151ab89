package modules_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"bidhub/pkg/application/modules"
)

func TestWorker_Run(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	testCases := []struct {
		name    string
		run     func(ctx context.Context) error
		wantErr error
	}{
		{
			name: "cancellation is a clean stop",
			run: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		},
		{
			name:    "failure is propagated",
			run:     func(context.Context) error { return errBoom },
			wantErr: errBoom,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rq := require.New(t)

			ctx, cancel := context.WithCancel(context.Background())

			g, gCtx := errgroup.WithContext(ctx)
			modules.Worker{Name: "test"}.Run(gCtx, g, tc.run)

			cancel()

			err := g.Wait()
			if tc.wantErr != nil {
				rq.ErrorIs(err, tc.wantErr)
				return
			}

			rq.NoError(err)
		})
	}
}
