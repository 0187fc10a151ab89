package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	appmetrics "git.appkode.ru/pub/go/metrics"
	"git.appkode.ru/pub/go/metrics/field"
	"github.com/benbjohnson/clock"
	"github.com/mymmrac/telego"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"bidhub/internal/config"
	"bidhub/internal/domain/service/account"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/infrastructure/feed"
	"bidhub/internal/infrastructure/notifier"
	"bidhub/internal/infrastructure/snapshot"
	"bidhub/internal/metrics"
	"bidhub/internal/server"
	"bidhub/internal/transport/bot"
	"bidhub/internal/transport/bot/handler"
	"bidhub/internal/transport/tui"
	"bidhub/internal/worker"
	"bidhub/pkg/application/connectors"
	"bidhub/pkg/application/modules"
	"bidhub/pkg/contextx"
	"bidhub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const httpServerReadHeaderTimeout = 5 * time.Second

// core is the listing engine shared by every front end.
type core struct {
	clock    clock.Clock
	store    *snapshot.Store
	poller   *worker.FeedPoller
	hub      *worker.CountdownHub
	watcher  *worker.ExpiryWatcher
	accounts *account.Service
	// bot is nil unless a token and chat are configured.
	bot *telego.Bot
}

func newCore(ctx context.Context, cfg config.Config, collector *metrics.Collector) core {
	c := clock.New()

	loaderOpts := []feed.Option{
		feed.WithTimeout(cfg.Feed.Timeout),
		feed.WithClock(c),
		feed.WithBearerToken(cfg.Feed.Token),
		feed.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
	}

	store := snapshot.NewStore()
	hub := worker.NewCountdownHub().WithClock(c)

	if collector != nil {
		loaderOpts = append(loaderOpts, feed.WithMetrics(collector))
		store.WithMetrics(collector)
		hub.WithMetrics(collector)
	}

	loader := feed.NewLoader(cfg.Feed.URL, loaderOpts...)

	var tg *telego.Bot
	if cfg.Bot.Enabled() {
		tg = (&connectors.TelegramBot{Token: cfg.Bot.Token}).Client(ctx)
	}

	return core{
		clock:    c,
		store:    store,
		poller:   worker.NewFeedPoller(loader, store).WithClock(c).WithInterval(cfg.Feed.PollInterval),
		hub:      hub,
		watcher:  worker.NewExpiryWatcher(hub, store, newNotifier(ctx, tg, cfg.Bot.ChatID)),
		accounts: account.NewService(store).WithClock(c),
		bot:      tg,
	}
}

func (c core) runWorkers(ctx context.Context, g *errgroup.Group) {
	modules.Worker{Name: "feed-poller"}.Run(ctx, g, c.poller.Run)
	modules.Worker{Name: "countdown-hub"}.Run(ctx, g, c.hub.Run)
	modules.Worker{Name: "expiry-watcher"}.Run(ctx, g, c.watcher.Run)
}

func newNotifier(ctx context.Context, tg *telego.Bot, chatID int64) worker.Notifier {
	if tg == nil {
		logger(ctx).Info("telegram bot not configured, auction results go to the log")
		return notifier.LogNotifier{}
	}

	n := notifier.NewTelegramBot(tg, chatID)

	if err := n.SendText(ctx, "BidHub is starting"); err != nil {
		logger(ctx).Error("bot.SendText", logx.Error(err))
	}

	return n
}

// Run serves the HTTP API until ctx is cancelled or a module fails.
func Run(ctx context.Context, cfg config.Config) error {
	g, ctx := errgroup.WithContext(ctx)

	collector := metrics.NewCollector(cfg.Metrics.Namespace, prometheus.DefaultRegisterer)
	httpMetrics := appmetrics.NewMetrics(
		field.NewName(cfg.Metrics.Namespace),
		field.NewName(cfg.App.Name),
		field.NewVersion(cfg.App.Version),
	)

	c := newCore(ctx, cfg, collector)
	c.runWorkers(ctx, g)

	if c.bot != nil && cfg.Bot.Commands {
		commands := bot.New(c.bot, handler.New(c.store, c.poller, c.clock), cfg.Bot.AdminID)
		modules.Worker{Name: "telegram-commands"}.Run(ctx, g, commands.Run)
	}

	api := server.NewServer(
		server.NewAuctionServer(c.store, c.poller, c.clock),
		server.NewAccountServer(c.accounts),
		server.NewGuideServer(listing.Guide()),
		server.NewStreamServer(c.hub, c.store).WithAllowedOrigins(cfg.HTTP.AllowedOrigins),
	)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr: cfg.HTTP.ListenAddress,
		Handler: server.NewHandler(api, server.HandlerOptions{
			LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
			Observer:       httpMetrics,
		}),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         c.store.Resolved,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// RunTUI drives the terminal UI. Quitting the UI stops the workers.
func RunTUI(ctx context.Context, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	c := newCore(ctx, cfg, nil)
	c.runWorkers(ctx, g)

	ticks, unsubscribe := c.hub.Subscribe()

	model := tui.NewModel(ctx, c.store, c.poller, c.accounts, ticks, c.clock.Now())

	g.Go(func() error {
		defer cancel()
		defer unsubscribe()

		return tui.Run(ctx, model)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
