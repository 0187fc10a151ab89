package config

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
	File   string `env:"LOG_FILE"`
	// TUIFile replaces the console while the terminal UI owns the screen.
	TUIFile string `env:"LOG_TUI_FILE" envDefault:"logs/bidhub-tui.log"`
}
