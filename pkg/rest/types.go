// Wire models of the public HTTP API.
package rest

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string

type Countdown struct {
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	Ended   bool   `json:"ended"`
	Text    string `json:"text"`
}

type AuctionCard struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CurrentPrice string    `json:"currentPrice"`
	NextBid      string    `json:"nextBid"`
	Bids         int       `json:"bids"`
	EndTime      time.Time `json:"endTime"`
	Countdown    Countdown `json:"countdown"`
	Ended        bool      `json:"ended"`
	Badge        string    `json:"badge,omitempty"`
	Urgency      string    `json:"urgency"`
	ImageURL     string    `json:"imageUrl"`
	ActionLabel  string    `json:"actionLabel"`
}

type AuctionList struct {
	State       string        `json:"state"`
	ActiveCount int           `json:"activeCount"`
	Total       int           `json:"total"`
	Auctions    []AuctionCard `json:"auctions"`
}

type Categories struct {
	Categories []string `json:"categories"`
}

// CountdownFrame is pushed over /v1/stream on every shared tick.
type CountdownFrame struct {
	At         time.Time            `json:"at"`
	Countdowns map[string]Countdown `json:"countdowns"`
}

type BidRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

type BidReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type GuideItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Guide struct {
	Title    string      `json:"title"`
	Intro    string      `json:"intro"`
	Steps    []GuideItem `json:"steps"`
	Features []GuideItem `json:"features"`
	About    []string    `json:"about"`
}

// Health is served by the demo feed at /api/health.
type Health struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	ActiveAuctions int       `json:"active_auctions"`
}
