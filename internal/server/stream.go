package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/pkg/logx"
	"bidhub/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const streamWriteWait = 5 * time.Second

type snapshotSource interface {
	Current() entity.Snapshot
}

type tickSource interface {
	Subscribe() (<-chan time.Time, func())
}

// StreamServer pushes countdown frames over a websocket. Every connection
// holds one subscription on the shared tick.
type StreamServer struct {
	ticks     tickSource
	snapshots snapshotSource
	upgrader  websocket.Upgrader
}

func NewStreamServer(ticks tickSource, snapshots snapshotSource) StreamServer {
	return StreamServer{
		ticks:     ticks,
		snapshots: snapshots,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024, //nolint:mnd
			WriteBufferSize: 1024, //nolint:mnd
			CheckOrigin:     checkOrigin(nil),
		},
	}
}

// WithAllowedOrigins lets pages served from other origins open the stream.
// Same-origin and non-browser clients are always accepted.
func (s StreamServer) WithAllowedOrigins(origins []string) StreamServer {
	s.upgrader.CheckOrigin = checkOrigin(origins)
	return s
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || lo.Contains(allowed, origin) {
			return true
		}

		u, err := url.Parse(origin)
		if err != nil {
			return false
		}

		return strings.EqualFold(u.Host, r.Host)
	}
}

// getV1Stream serves /v1/stream?ids=1,2. Without ids every record of the
// current snapshot is included.
func (s StreamServer) getV1Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ids := parseIDs(r.URL.Query().Get("ids"))

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger(ctx).Warn("upgrader.Upgrade", logx.Error(err))
		return
	}
	defer conn.Close()

	ticks, cancel := s.ticks.Subscribe()
	defer cancel()

	logger(ctx).Info("countdown stream opened", slog.Int(logx.FieldCount, len(ids)))

	closed := make(chan struct{})

	go func() {
		defer close(closed)

		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			logger(ctx).Info("countdown stream closed by client")
			return
		case now, ok := <-ticks:
			if !ok {
				_ = conn.WriteControl( //nolint:errcheck
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
					time.Now().Add(streamWriteWait),
				)

				return
			}

			if err := s.send(conn, s.frame(ids, now)); err != nil {
				logger(ctx).Warn("countdown stream write", logx.Error(err))
				return
			}
		}
	}
}

func (s StreamServer) send(conn *websocket.Conn, frame rest.CountdownFrame) error {
	b, err := json.Marshal(frame)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err //nolint:wrapcheck
	}

	return conn.WriteMessage(websocket.TextMessage, b) //nolint:wrapcheck
}

func (s StreamServer) frame(ids []value.AuctionID, now time.Time) rest.CountdownFrame {
	auctions := s.snapshots.Current().Auctions

	frame := rest.CountdownFrame{
		At:         now,
		Countdowns: make(map[string]rest.Countdown),
	}

	add := func(a entity.Auction) {
		frame.Countdowns[a.ID.String()] = newRESTCountdown(listing.Countdown(a.EndTime, now))
	}

	if len(ids) == 0 {
		for _, a := range auctions {
			add(a)
		}

		return frame
	}

	for _, id := range ids {
		if a, ok := auctions.Find(id); ok {
			add(a)
		}
	}

	return frame
}

func parseIDs(s string) []value.AuctionID {
	var ids []value.AuctionID

	for _, part := range strings.Split(s, ",") {
		if id, err := value.ParseAuctionID(part); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}
