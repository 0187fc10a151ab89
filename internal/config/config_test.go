package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bidhub/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("http://localhost:5000/api/auctions", cfg.Feed.URL)
	rq.Equal(10*time.Second, cfg.Feed.Timeout)
	rq.Equal(time.Minute, cfg.Feed.PollInterval)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal("normal", cfg.FeedStub.Mode)
	rq.False(cfg.Bot.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	rq := require.New(t)

	t.Setenv("FEED_URL", "http://feed.test/api/auctions")
	t.Setenv("FEED_POLL_INTERVAL", "5s")
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_CHAT_ID", "42")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("http://feed.test/api/auctions", cfg.Feed.URL)
	rq.Equal(5*time.Second, cfg.Feed.PollInterval)
	rq.True(cfg.Bot.Enabled())
	rq.Equal(int64(42), cfg.Bot.ChatID)
	rq.Equal("json", cfg.Log.Format)
	rq.Equal([]string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("FEED_TIMEOUT", "soon")

	_, err := config.Load()
	require.ErrorContains(t, err, "env.Parse")
}
