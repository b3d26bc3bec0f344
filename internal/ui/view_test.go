package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckSelectView(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "Blackjack Advisor")
	assert.Contains(t, view, "How many decks")
}

func TestTableView(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	view := m.View()
	assert.Contains(t, view, "Running count")
	assert.Contains(t, view, "True count")
	assert.Contains(t, view, "52 cards")
	assert.Contains(t, view, "Edge est.")
	assert.Contains(t, view, "Player:")
	assert.Contains(t, view, "Dealer:")
	assert.Contains(t, view, "PLAYER", "active zone shown in the input line")
}

func TestTableView_ShowsHandTotals(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "a")
	press(m, tea.KeyEnter)
	typeString(m, "6")
	press(m, tea.KeyEnter)

	view := m.View()
	assert.Contains(t, view, "A 6 = 17 (soft)")
}

func TestTableView_BustWarning(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "10")
	press(m, tea.KeyEnter)
	typeString(m, "6")
	press(m, tea.KeyEnter)
	press(m, tea.KeyTab)
	typeString(m, "10")
	press(m, tea.KeyEnter)

	press(m, tea.KeyCtrlR)
	require.NotNil(t, m.rec)
	require.True(t, m.rec.BustWarning)

	assert.Contains(t, m.View(), "Bust chance if you hit")
}

func TestHelpView(t *testing.T) {
	t.Parallel()

	view := helpView()
	assert.Contains(t, view, "next hand")
	assert.Contains(t, view, "new shoe")
	assert.Contains(t, view, "wasted")
}
