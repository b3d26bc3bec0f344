package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/advisor"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/config"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/sound"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/strategy"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	session, err := advisor.NewSession(1, advisor.Options{})
	require.NoError(t, err)
	return New(session, config.Default(), sound.NewManager(), nil)
}

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func TestNextZone_Cycles(t *testing.T) {
	t.Parallel()

	z := advisor.ZonePlayer
	z = nextZone(z)
	assert.Equal(t, advisor.ZoneDealer, z)
	z = nextZone(z)
	assert.Equal(t, advisor.ZoneWasted, z)
	z = nextZone(z)
	assert.Equal(t, advisor.ZonePlayer, z)
}

func TestModel_DeckSelect(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, PhaseDeckSelect, m.phase)

	typeString(m, "6")
	press(m, tea.KeyEnter)

	assert.Equal(t, PhaseTable, m.phase)
	assert.Equal(t, 6, m.session.NumDecks())
}

func TestModel_DeckSelectRejectsBadInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	typeString(m, "9")
	press(m, tea.KeyEnter)

	assert.Equal(t, PhaseDeckSelect, m.phase)
	assert.NotEmpty(t, m.notice)
}

func TestModel_RegisterCardToZones(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "10")
	press(m, tea.KeyEnter)
	assert.Equal(t, card.Hand{card.Rank10}, m.session.PlayerHand())

	press(m, tea.KeyTab)
	typeString(m, "a")
	press(m, tea.KeyEnter)
	assert.Equal(t, card.Hand{card.RankA}, m.session.DealerHand())

	press(m, tea.KeyTab)
	typeString(m, "5")
	press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.session.WastedCount())

	assert.Equal(t, 49, m.session.Counts().RemainingTotal)
}

func TestModel_RegisterSuitedCard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	typeString(m, "1")
	press(m, tea.KeyEnter)
	require.Equal(t, PhaseTable, m.phase)

	// A suit suffix is accepted and discarded; only the rank matters
	typeString(m, "10s")
	press(m, tea.KeyEnter)
	assert.Equal(t, card.Hand{card.Rank10}, m.session.PlayerHand())

	typeString(m, "ah")
	press(m, tea.KeyEnter)
	assert.Equal(t, card.Hand{card.Rank10, card.RankA}, m.session.PlayerHand())
}

func TestModel_RegisterCardUnknownRank(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "1")
	press(m, tea.KeyEnter)

	assert.Empty(t, m.session.PlayerHand())
	assert.True(t, m.isErr)
}

func TestModel_RecommendationFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "10")
	press(m, tea.KeyEnter)
	typeString(m, "6")
	press(m, tea.KeyEnter)
	press(m, tea.KeyTab) // dealer
	typeString(m, "10")
	press(m, tea.KeyEnter)

	press(m, tea.KeyCtrlR)

	require.NotNil(t, m.rec)
	assert.Equal(t, strategy.ActionHit, m.rec.Action)
	assert.Contains(t, m.View(), "Hit")
}

func TestModel_RecommendationErrorShowsNotice(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	// No cards entered yet
	press(m, tea.KeyCtrlR)

	assert.Nil(t, m.rec)
	assert.True(t, m.isErr)
	assert.NotEmpty(t, m.notice)
}

func TestModel_FirstDecisionTracking(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "5")
	press(m, tea.KeyEnter)
	typeString(m, "6")
	press(m, tea.KeyEnter)
	assert.True(t, m.isFirstDecision())

	// A third player card ends surrender eligibility
	typeString(m, "4")
	press(m, tea.KeyEnter)
	assert.False(t, m.isFirstDecision())
}

func TestModel_SplitEndsFirstDecision(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "8")
	press(m, tea.KeyEnter)
	typeString(m, "8")
	press(m, tea.KeyEnter)
	require.True(t, m.isFirstDecision())

	press(m, tea.KeyCtrlS)
	assert.Equal(t, 1, m.splitCount)
	assert.False(t, m.isFirstDecision())
}

func TestModel_NextHandClearsShellState(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "8")
	press(m, tea.KeyEnter)
	press(m, tea.KeyCtrlS)
	press(m, tea.KeyCtrlN)

	assert.Empty(t, m.session.PlayerHand())
	assert.Zero(t, m.splitCount)
	assert.False(t, m.playerHit)
	assert.Nil(t, m.rec)
	assert.Equal(t, advisor.ZonePlayer, m.zone)

	// The count survives the hand change
	assert.Equal(t, 51, m.session.Counts().RemainingTotal)
}

func TestModel_NewShoeResetsCount(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	typeString(m, "5")
	press(m, tea.KeyEnter)
	require.Equal(t, 1, m.session.Counts().RunningCount)

	press(m, tea.KeyCtrlX)

	counts := m.session.Counts()
	assert.Equal(t, 0, counts.RunningCount)
	assert.Equal(t, 52, counts.RemainingTotal)
}

func TestModel_HelpToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.phase = PhaseTable

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Equal(t, PhaseHelp, m.phase)

	press(m, tea.KeyEsc)
	assert.Equal(t, PhaseTable, m.phase)
}
