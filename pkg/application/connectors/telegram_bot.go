package connectors

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mymmrac/telego"
	"github.com/samber/lo"

	"bidhub/pkg/logx"
)

type TelegramBot struct {
	value   *telego.Bot
	Token   string
	Options []telego.BotOption
	init    sync.Once
}

// Client builds the bot on first use. A malformed token panics like any
// other connector that cannot start; an unreachable API is only logged.
func (t *TelegramBot) Client(ctx context.Context) *telego.Bot {
	t.init.Do(func() {
		t.value = lo.Must(telego.NewBot(t.Token, t.Options...))

		me, err := t.value.GetMe(ctx)
		if err != nil {
			logger(ctx).Warn("bot.GetMe", logx.Error(err))
			return
		}

		logger(ctx).Info("telegram bot connected", slog.String("bot", me.Username))
	})

	return t.value
}
