package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/internal/transport/bot/view"
	"bidhub/pkg/logx"
)

// OnPageCallback redraws a paged listing in place.
func (h *Handler) OnPageCallback(ctx *th.Context, query telego.CallbackQuery) error {
	page, category, err := view.ParsePageData(query.Data)
	if err != nil {
		page, category = 1, value.CategoryAll
	}

	if query.Message != nil {
		v := h.store.Present(listing.Query{Category: category}, h.clock.Now())

		title := liveAuctionsTitle
		if category != value.CategoryAll {
			title = category.String()
		}

		text, shown, pages := view.AuctionsPage(v, title, page)

		// Telegram rejects edits that change nothing; that is not worth a reply.
		_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        text,
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: view.PageKeyboard(shown, pages, category),
		})
		if err != nil {
			logger(ctx).Warn("bot.EditMessageText", logx.Error(err))
		}
	}

	if err := ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID)); err != nil {
		return fmt.Errorf("bot.AnswerCallbackQuery: %w", err)
	}

	return nil
}
