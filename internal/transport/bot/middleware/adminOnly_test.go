package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"bidhub/internal/transport/bot/middleware"
)

func TestUserID(t *testing.T) {
	testCases := []struct {
		name   string
		update telego.Update
		wantID int64
		wantOK bool
	}{
		{
			name:   "message",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 7}}},
			wantID: 7,
			wantOK: true,
		},
		{
			name:   "channel post without sender",
			update: telego.Update{Message: &telego.Message{}},
		},
		{
			name:   "callback query",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 9}}},
			wantID: 9,
			wantOK: true,
		},
		{
			name: "other update",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			id, ok := middleware.UserID(tc.update)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.wantID, id)
		})
	}
}

// Rejected updates never reach the context, so a nil one is enough here.
func TestAdminOnlyRejects(t *testing.T) {
	testCases := []struct {
		name    string
		adminID int64
		update  telego.Update
	}{
		{
			name:    "other user",
			adminID: 7,
			update:  telego.Update{Message: &telego.Message{From: &telego.User{ID: 8}}},
		},
		{
			name:    "no admin configured",
			adminID: 0,
			update:  telego.Update{Message: &telego.Message{From: &telego.User{ID: 0}}},
		},
		{
			name:    "no sender",
			adminID: 7,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, middleware.AdminOnly(tc.adminID)(nil, tc.update))
		})
	}
}
