package config

import "time"

type Feed struct {
	URL          string        `env:"FEED_URL" envDefault:"http://localhost:5000/api/auctions"`
	Timeout      time.Duration `env:"FEED_TIMEOUT" envDefault:"10s"`
	PollInterval time.Duration `env:"FEED_POLL_INTERVAL" envDefault:"60s"`
	Token        string        `env:"FEED_TOKEN" json:"-"`
}

// FeedStub configures the demo feed server. Mode is normal, empty or error.
type FeedStub struct {
	ListenAddress string `env:"FEED_STUB_LISTEN_ADDRESS" envDefault:":5000"`
	Mode          string `env:"FEED_STUB_MODE" envDefault:"normal"`
}
