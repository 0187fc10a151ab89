package notifier

import (
	"context"
	"fmt"
	"html"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
)

// TelegramBot posts auction results to one chat.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(bot *telego.Bot, chatID int64) *TelegramBot {
	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}
}

func (b *TelegramBot) Notify(ctx context.Context, a entity.Auction) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		endedMessage(a),
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

// SendText sends a plain message, used as a startup check.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	if _, err := b.bot.SendMessage(ctx, tu.Message(tu.ID(b.chatID), text)); err != nil {
		return fmt.Errorf("bot.SendMessage: %w", err)
	}

	return nil
}

func endedMessage(a entity.Auction) string {
	return fmt.Sprintf(
		"🔨 <b>Auction ended</b>\n\n"+
			"🏷 <b>Item:</b> %s\n"+
			"📂 <b>Category:</b> %s\n"+
			"💰 <b>Final price:</b> %s\n"+
			"🙋 <b>Bids:</b> %d",
		html.EscapeString(a.Name),
		html.EscapeString(a.Category.String()),
		listing.FormatPrice(a.CurrentPrice),
		a.Bids,
	)
}
