package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/advisor"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/apperrors"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/logger"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere
	if msg.Type == tea.KeyCtrlC {
		m.saveSummary()
		return m, tea.Quit
	}

	switch m.phase {
	case PhaseDeckSelect:
		return m.handleDeckSelectKey(msg)
	case PhaseHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleTableKey(msg)
	}
}

func (m *Model) handleDeckSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.applyDeckSelection()
	case "q", "esc":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q":
		m.phase = PhaseTable
	}
	return m, nil
}

func (m *Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.registerTypedCard()

	case "tab":
		m.zone = nextZone(m.zone)
		return m, nil

	case "ctrl+r":
		return m, m.requestRecommendation()

	case "ctrl+s":
		m.splitCount++
		m.rec = nil
		return m, m.setNotice(fmt.Sprintf("split #%d noted, play each hand separately", m.splitCount), false)

	case "ctrl+n":
		m.nextHand()
		return m, m.setNotice("next hand: table cleared, count kept", false)

	case "ctrl+x":
		if err := m.session.NewShoe(0); err != nil {
			return m, m.setNotice(err.Error(), true)
		}
		m.nextHand()
		m.handsPlayed = 0
		logger.LogInfo("shoe reshuffled")
		return m, m.setNotice("new shoe: count reset", false)

	// "?" is never part of a rank, unlike q/k/a/j/t
	case "?":
		m.phase = PhaseHelp
		return m, nil

	case "esc":
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// registerTypedCard parses the input field as a rank and registers it
// to the active zone.
func (m *Model) registerTypedCard() tea.Cmd {
	value := m.input.Value()
	if value == "" {
		return nil
	}

	rank, err := card.RankFromString(value)
	if err != nil {
		return m.setNotice(fmt.Sprintf("unknown rank %q", value), true)
	}
	m.input.Reset()

	wasPlayer := len(m.session.PlayerHand())
	warn := m.session.RegisterCard(rank, m.zone)

	// A third player card means the first decision is behind us
	if m.zone == advisor.ZonePlayer && wasPlayer >= 2 {
		m.playerHit = true
	}
	// Any new card invalidates the last recommendation
	m.rec = nil

	if warn != nil {
		if errors.Is(warn, apperrors.ErrShoeExhausted) {
			return m.setNotice(fmt.Sprintf("all %s already seen, check your entries", rank), true)
		}
		return m.setNotice(warn.Error(), true)
	}
	return nil
}

// nextHand clears per-hand shell state alongside the session hands.
func (m *Model) nextHand() {
	m.session.NextHand()
	m.splitCount = 0
	m.playerHit = false
	m.rec = nil
	m.zone = advisor.ZonePlayer
	m.handsPlayed++
}

func nextZone(z advisor.Zone) advisor.Zone {
	switch z {
	case advisor.ZonePlayer:
		return advisor.ZoneDealer
	case advisor.ZoneDealer:
		return advisor.ZoneWasted
	default:
		return advisor.ZonePlayer
	}
}
