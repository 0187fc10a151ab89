package tui

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/charmbracelet/lipgloss"

	"bidhub/internal/domain/service/listing"
	"bidhub/internal/domain/value"
)

const LoadingText = "Loading auctions..."

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.view == value.ViewHowItWorks {
		b.WriteString(m.renderGuide())
	} else {
		b.WriteString(m.renderAuctions())
	}

	if m.status != "" {
		b.WriteString("\n" + titleStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render(helpLine) + "\n")

	return b.String()
}

func (m Model) renderHeader() string {
	user := "not signed in"
	if m.session != nil {
		user = "signed in as " + m.session.User.Name
	}

	return headerStyle.Render("BidHub · "+m.view.Title()) + " " + mutedStyle.Render(user)
}

func (m Model) renderAuctions() string {
	view := m.Listing()

	if view.State == value.LoadStatePending {
		return mutedStyle.Render(LoadingText) + "\n"
	}

	var b strings.Builder

	cursor := ""
	if m.searching {
		cursor = "▏"
	}

	b.WriteString("Search: " + m.search + cursor + "\n")
	b.WriteString(m.renderChips() + "\n\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Live Auctions (%d)", view.ActiveCount)))
	b.WriteString("  " + mutedStyle.Render("Ending Soon First") + "\n")

	if len(view.Cards) == 0 {
		b.WriteString(mutedStyle.Render("No auctions match your search.") + "\n")
		return b.String()
	}

	for i, card := range view.Cards {
		b.WriteString(renderCard(card, i == m.selected) + "\n")
	}

	return b.String()
}

func (m Model) renderChips() string {
	chips := make([]string, 0, len(m.categories))

	for i, c := range m.categories {
		style := chipStyle
		if i == m.category {
			style = activeChipStyle
		}

		chips = append(chips, style.Render(c.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func renderCard(card listing.Card, selected bool) string {
	title := titleStyle.Render(card.Name)

	switch card.Badge {
	case listing.BadgeEnded:
		title += " " + endedBadgeStyle.Render(card.Badge)
	case listing.BadgeEndingSoon:
		title += " " + soonBadgeStyle.Render(card.Badge)
	}

	countdown := card.Countdown.String()
	if card.Urgency == value.UrgencyHigh {
		countdown = urgentStyle.Render(countdown)
	}

	lines := []string{
		title,
		mutedStyle.Render(card.Category.String()),
		"Current bid " + priceStyle.Render(card.CurrentPrice) + "   Next " + card.NextBid,
		fmt.Sprintf("%d bids · %s", card.Bids, countdown),
		mutedStyle.Render("[" + card.ActionLabel + "]"),
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}

	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) renderGuide() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.guide.Title) + "\n")
	b.WriteString(m.guide.Intro + "\n\n")

	for _, step := range m.guide.Steps {
		b.WriteString(titleStyle.Render(step.Title) + "\n")
		b.WriteString(mutedStyle.Render(step.Description) + "\n\n")
	}

	b.WriteString(titleStyle.Render("Key Features") + "\n")

	for _, f := range m.guide.Features {
		b.WriteString("• " + f.Title + ": " + f.Description + "\n")
	}

	for _, p := range m.guide.About {
		b.WriteString("\n" + p + "\n")
	}

	return b.String()
}

func errorMessage(err error) string {
	if d := failure.Description(err); d != "" {
		return d
	}

	return err.Error()
}
