// Package view renders listing data as Telegram HTML messages.
package view

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"bidhub/internal/domain/entity"
	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
	"bidhub/pkg/errcodes"
)

const (
	PageSize = 5

	pagePrefix = "page:"
)

const StartMessage = `<b>BidHub</b>

/auctions [search] - live auctions, ending soonest first
/auction &lt;id&gt; - one auction with its countdown
/categories - category filters
/category &lt;name&gt; - auctions in one category
/howitworks - how bidding works`

// AuctionsPage renders one page of cards. page is clamped to the valid range
// and returned along with the page count.
func AuctionsPage(v listing.View, title string, page int) (string, int, int) {
	var sb strings.Builder

	if v.State == value.LoadStatePending {
		return "Loading auctions...", 1, 1
	}

	pages := max(1, (len(v.Cards)+PageSize-1)/PageSize)
	page = min(max(page, 1), pages)

	fmt.Fprintf(&sb, "<b>%s (%d)</b>\n", html.EscapeString(title), v.ActiveCount)

	if len(v.Cards) == 0 {
		sb.WriteString("\nNo auctions match.")
		return sb.String(), page, pages
	}

	if pages > 1 {
		fmt.Fprintf(&sb, "Page %d/%d\n", page, pages)
	}

	from := (page - 1) * PageSize
	to := min(from+PageSize, len(v.Cards))

	for _, c := range v.Cards[from:to] {
		sb.WriteString("\n")
		sb.WriteString(cardLine(c))
	}

	return sb.String(), page, pages
}

func cardLine(c listing.Card) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b> <code>%s</code>\n", html.EscapeString(c.Name), html.EscapeString(c.ID.String()))

	if c.Badge != "" {
		fmt.Fprintf(&sb, "[%s] ", c.Badge)
	}

	fmt.Fprintf(&sb, "%s, %d bids, %s\n", c.CurrentPrice, c.Bids, c.Countdown)

	return sb.String()
}

// Auction renders the detail message of one card.
func Auction(c listing.Card) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(c.Name))
	fmt.Fprintf(&sb, "%s\n\n", html.EscapeString(c.Category.String()))

	if c.Badge != "" {
		fmt.Fprintf(&sb, "<b>%s</b>\n", c.Badge)
	}

	fmt.Fprintf(&sb, "Current bid: %s\n", c.CurrentPrice)
	fmt.Fprintf(&sb, "Bids: %d\n", c.Bids)

	if c.Ended {
		sb.WriteString(entity.CountdownEndedLabel)
	} else {
		fmt.Fprintf(&sb, "Next bid: %s\n", c.NextBid)
		fmt.Fprintf(&sb, "Time left: %s", c.Countdown)
	}

	return sb.String()
}

func Categories() string {
	var sb strings.Builder

	sb.WriteString("<b>Categories</b>\n")

	for _, c := range value.Categories() {
		fmt.Fprintf(&sb, "\n%s", html.EscapeString(c.String()))
	}

	return sb.String()
}

func Guide(g entity.Guide) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>\n%s\n", html.EscapeString(g.Title), html.EscapeString(g.Intro))

	for _, s := range g.Steps {
		fmt.Fprintf(&sb, "\n<b>%s</b>\n%s\n", html.EscapeString(s.Title), html.EscapeString(s.Description))
	}

	if len(g.Features) > 0 {
		sb.WriteString("\n<b>Key Features</b>\n")
	}

	for _, f := range g.Features {
		fmt.Fprintf(&sb, "- <b>%s</b>: %s\n", html.EscapeString(f.Title), html.EscapeString(f.Description))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// PageKeyboard returns nil when everything fits on one page.
func PageKeyboard(page, pages int, category value.Category) *telego.InlineKeyboardMarkup {
	if pages <= 1 {
		return nil
	}

	row := make([]telego.InlineKeyboardButton, 0, 2)

	if page > 1 {
		row = append(row, tu.InlineKeyboardButton("< Prev").WithCallbackData(PageData(page-1, category)))
	}

	if page < pages {
		row = append(row, tu.InlineKeyboardButton("Next >").WithCallbackData(PageData(page+1, category)))
	}

	return tu.InlineKeyboard(row)
}

// PageData encodes a page request as callback data, "page:<n>:<category>".
func PageData(page int, category value.Category) string {
	return pagePrefix + strconv.Itoa(page) + ":" + category.String()
}

func ParsePageData(data string) (int, value.Category, error) {
	rest, ok := strings.CutPrefix(data, pagePrefix)
	if !ok {
		return 0, "", invalidPageData(data)
	}

	num, name, _ := strings.Cut(rest, ":")

	page, err := strconv.Atoi(num)
	if err != nil {
		return 0, "", invalidPageData(data)
	}

	category, err := value.ParseCategory(name)
	if err != nil {
		return 0, "", fmt.Errorf("value.ParseCategory: %w", err)
	}

	return page, category, nil
}

func invalidPageData(data string) error {
	return failure.NewInvalidArgumentError(
		"invalid page data "+strconv.Quote(data),
		failure.WithCode(errcodes.ValidationError),
	)
}
