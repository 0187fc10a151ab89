package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"bidhub/internal/domain/value"
)

const (
	keyQuit      = "q"
	keyForceQuit = "ctrl+c"
	keyToggle    = "tab"
	keyPrevCat   = "left"
	keyNextCat   = "right"
	keyUp        = "up"
	keyDown      = "down"
	keySearch    = "/"
	keyBid       = "b"
	keySignIn    = "l"
	keySignOut   = "o"
	keyRefresh   = "r"
)

const helpLine = "tab view • ←/→ category • / search • ↑/↓ select • b bid • l sign in • o sign out • r refresh • q quit"

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keyForceQuit {
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch key {
	case keyQuit:
		return m, tea.Quit
	case keyToggle:
		m.view = m.view.Next()
		m.selected = 0
	case keyRefresh:
		m.status = "Refreshing..."
		return m, m.refresh()
	case keySignIn:
		if m.session == nil {
			return m, m.signIn()
		}
	case keySignOut:
		if m.session != nil {
			m.session = nil
			m.status = "Signed out"
		}
	}

	if m.view != value.ViewAuctions {
		return m, nil
	}

	switch key {
	case keyPrevCat:
		m.category = (m.category + len(m.categories) - 1) % len(m.categories)
		m.selected = 0
	case keyNextCat:
		m.category = (m.category + 1) % len(m.categories)
		m.selected = 0
	case keyUp:
		if m.selected > 0 {
			m.selected--
		}
	case keyDown:
		if m.selected < len(m.Listing().Cards)-1 {
			m.selected++
		}
	case keySearch:
		m.searching = true
	case keyBid:
		cards := m.Listing().Cards
		if m.selected < len(cards) {
			return m, m.bid(cards[m.selected].ID)
		}
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
	case tea.KeyBackspace:
		if r := []rune(m.search); len(r) > 0 {
			m.search = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.search += " "
	case tea.KeyRunes:
		m.search += string(msg.Runes)
	}

	m.selected = 0

	return m, nil
}
