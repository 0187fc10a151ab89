package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly drops updates from anyone but adminID. A zero adminID drops all.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		userID, ok := UserID(update)
		if !ok || adminID == 0 || userID != adminID {
			return nil
		}

		return ctx.Next(update)
	}
}

// UserID returns the sender of a message or callback query.
func UserID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, true
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID, true
	default:
		return 0, false
	}
}
