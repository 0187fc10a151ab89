package config

// Bot is optional: without a token auction results only go to the log.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
	// Commands turns on the long-polling command front end.
	Commands bool  `env:"BOT_COMMANDS" envDefault:"false"`
	AdminID  int64 `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}
