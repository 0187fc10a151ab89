package handler

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/internal/transport/bot/view"
	"bidhub/pkg/logx"
)

const liveAuctionsTitle = "Live Auctions"

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage, nil)
}

func (h *Handler) OnAuctions(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)
	search := strings.Join(args, " ")

	v := h.store.Present(listing.Query{Search: search, Category: value.CategoryAll}, h.clock.Now())

	if search != "" {
		text, _, _ := view.AuctionsPage(v, fmt.Sprintf("Results for %q", search), 1)
		return h.sendHTML(ctx, msg.Chat.ID, text, nil)
	}

	return h.sendPage(ctx, msg.Chat.ID, v, value.CategoryAll, 1)
}

func (h *Handler) OnCategory(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)

	category, err := value.ParseCategory(strings.Join(args, " "))
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, html.EscapeString(failure.Description(err)), nil)
	}

	v := h.store.Present(listing.Query{Category: category}, h.clock.Now())

	return h.sendPage(ctx, msg.Chat.ID, v, category, 1)
}

func (h *Handler) OnAuction(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)

	if len(args) != 1 {
		return h.sendHTML(ctx, msg.Chat.ID, "Usage: /auction &lt;id&gt;", nil)
	}

	id, err := value.ParseAuctionID(args[0])
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, html.EscapeString(failure.Description(err)), nil)
	}

	a, ok := h.store.Get(id)
	if !ok {
		return h.sendHTML(ctx, msg.Chat.ID, "Auction not found.", nil)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.Auction(listing.CardFor(a, h.clock.Now())), nil)
}

func (h *Handler) OnCategories(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Categories(), nil)
}

func (h *Handler) OnHowItWorks(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Guide(h.guide), nil)
}

func (h *Handler) OnRefresh(ctx *th.Context, msg telego.Message) error {
	snap, applied := h.refresher.Refresh(ctx)

	text := "Feed unchanged."
	if applied {
		text = fmt.Sprintf("Feed refreshed: %d auctions.", len(snap.Auctions))
	}

	var userID int64
	if msg.From != nil {
		userID = msg.From.ID
	}

	logger(ctx).Info("refresh requested from telegram",
		slog.Int64("user_id", userID),
		slog.Bool("applied", applied),
	)

	return h.sendHTML(ctx, msg.Chat.ID, text, nil)
}

func (h *Handler) sendPage(ctx *th.Context, chatID int64, v listing.View, category value.Category, page int) error {
	title := liveAuctionsTitle
	if category != value.CategoryAll {
		title = category.String()
	}

	text, page, pages := view.AuctionsPage(v, title, page)

	return h.sendHTML(ctx, chatID, text, view.PageKeyboard(page, pages, category))
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string, keyboard *telego.InlineKeyboardMarkup) error {
	params := tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML)
	if keyboard != nil {
		params = params.WithReplyMarkup(keyboard)
	}

	if _, err := ctx.Bot().SendMessage(ctx, params); err != nil {
		logger(ctx).Error("bot.SendMessage", logx.Error(err))
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}
