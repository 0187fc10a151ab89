// Package feed loads the auction list from the remote feed. Fetch never
// fails: any transport or shape problem is logged and answered with the
// built-in fallback catalogue.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-resty/resty/v2"

	"bidhub/internal/domain"
	"bidhub/internal/domain/entity"
	"bidhub/pkg/contextx"
	"bidhub/pkg/errcodes"
	"bidhub/pkg/httpx"
	"bidhub/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	DefaultTimeout = 10 * time.Second

	outcomeOK = "ok"
)

type fetchMetrics interface {
	FeedFetched(outcome string)
}

type nopMetrics struct{}

func (nopMetrics) FeedFetched(string) {}

type Loader struct {
	url            string
	client         *resty.Client
	clock          clock.Clock
	metrics        fetchMetrics
	timeout        time.Duration
	token          string
	logFieldMaxLen int
}

type Option func(*Loader)

func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

func WithClock(c clock.Clock) Option {
	return func(l *Loader) {
		l.clock = c
	}
}

// WithHTTPClient replaces the resty client. Its transport is still wrapped
// with request logging.
func WithHTTPClient(c *resty.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

func WithMetrics(m fetchMetrics) Option {
	return func(l *Loader) {
		l.metrics = m
	}
}

func WithBearerToken(token string) Option {
	return func(l *Loader) {
		l.token = token
	}
}

func WithLogFieldMaxLen(n int) Option {
	return func(l *Loader) {
		l.logFieldMaxLen = n
	}
}

func NewLoader(url string, opts ...Option) *Loader {
	l := &Loader{
		url:     url,
		clock:   clock.New(),
		metrics: nopMetrics{},
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.client == nil {
		l.client = resty.New()
	}

	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(l.logFieldMaxLen),
	)

	if l.token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, httpx.NewStaticTokenAuthenticator(l.token))
	}

	l.client.
		SetTransport(transport).
		SetTimeout(l.timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{})


	return l
}

// Fetch returns the feed's list in source order, or the fallback catalogue.
func (l *Loader) Fetch(ctx context.Context) entity.AuctionList {
	list, err := l.get(ctx)
	if err != nil {
		code, _ := domain.GetCode(err)

		logger(ctx).Warn(
			"auction feed unavailable, serving fallback",
			slog.String(logx.FieldFeedURL, l.url),
			slog.String(logx.FieldErrorCode, code.String()),
			logx.Error(err),
		)

		l.metrics.FeedFetched(code.String())

		return l.Fallback()
	}

	l.metrics.FeedFetched(outcomeOK)

	logger(ctx).Debug("auction feed fetched", slog.Int(logx.FieldCount, len(list)))

	return list
}

// Fallback returns the fixed catalogue with end times anchored to the current
// clock, so exactly one record is ended however long the process has run.
func (l *Loader) Fallback() entity.AuctionList {
	return FallbackAuctions(l.clock.Now())
}

func (l *Loader) get(ctx context.Context) (entity.AuctionList, error) {
	resp, err := l.client.R().SetContext(ctx).Get(l.url)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.NetworkFailure, "feed request failed")
	}

	if !resp.IsSuccess() {
		return nil, domain.NewError(errcodes.NetworkFailure, fmt.Sprintf("feed responded with status %d", resp.StatusCode()))
	}

	list, err := Decode(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return list, nil
}
