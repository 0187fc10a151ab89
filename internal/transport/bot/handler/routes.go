package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"bidhub/internal/transport/bot/middleware"
)

// RegisterRoutes binds the read-only commands for everyone and /refresh for
// the admin only.
func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	bh.HandleMessage(h.OnStart, th.Or(th.CommandEqual("start"), th.CommandEqual("help")))
	bh.HandleMessage(h.OnAuctions, th.CommandEqual("auctions"))
	bh.HandleMessage(h.OnAuction, th.CommandEqual("auction"))
	bh.HandleMessage(h.OnCategories, th.CommandEqual("categories"))
	bh.HandleMessage(h.OnCategory, th.CommandEqual("category"))
	bh.HandleMessage(h.OnHowItWorks, th.CommandEqual("howitworks"))

	bh.HandleCallbackQuery(h.OnPageCallback, th.CallbackDataPrefix("page:"))

	adminGroup := bh.Group(th.CommandEqual("refresh"))
	adminGroup.Use(middleware.AdminOnly(adminID))
	adminGroup.HandleMessage(h.OnRefresh)
}
