package server

import "bidhub/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server groups the handlers of the public API. Each embedded server owns the
// routes of one area.
type Server struct {
	AuctionServer
	AccountServer
	GuideServer
	StreamServer
}

func NewServer(
	auctionServer AuctionServer,
	accountServer AccountServer,
	guideServer GuideServer,
	streamServer StreamServer,
) Server {
	return Server{
		AuctionServer: auctionServer,
		AccountServer: accountServer,
		GuideServer:   guideServer,
		StreamServer:  streamServer,
	}
}
