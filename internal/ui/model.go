// Package ui implements the terminal shell around the advisor
// session: the card-tracking grid, the counts panel and the
// recommendation view.
package ui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/advisor"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/config"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/history"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/logger"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/sound"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/strategy"
)

// Phase represents the current shell screen.
type Phase int

const (
	PhaseDeckSelect Phase = iota
	PhaseTable
	PhaseHelp
)

const noticeTimeout = 3 * time.Second

// clearNoticeMsg clears a temporary notice line.
type clearNoticeMsg struct{}

// Model is the bubbletea model for the advisor shell.
type Model struct {
	session *advisor.Session
	cfg     *config.Config
	sounds  *sound.Manager
	store   *history.Store

	phase Phase
	input textinput.Model
	zone  advisor.Zone

	width  int
	height int

	// Per-hand decision state tracked at the shell level
	splitCount int
	playerHit  bool

	rec    *strategy.Recommendation
	notice string
	isErr  bool

	startedAt   time.Time
	handsPlayed int
}

// New creates the shell model. store may be nil when history is
// disabled; sounds may be a manager that never initialized.
func New(session *advisor.Session, cfg *config.Config, sounds *sound.Manager, store *history.Store) *Model {
	input := textinput.New()
	input.Placeholder = "decks (1-8)"
	input.CharLimit = 2
	input.Width = 24
	input.Focus()

	return &Model{
		session:   session,
		cfg:       cfg,
		sounds:    sounds,
		store:     store,
		phase:     PhaseDeckSelect,
		input:     input,
		zone:      advisor.ZonePlayer,
		startedAt: time.Now(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearNoticeMsg:
		m.notice = ""
		m.isErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// setNotice shows a temporary line under the input.
func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.notice = text
	m.isErr = isErr
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// isFirstDecision reports whether the player is still on the first
// two cards with no hit or split behind them.
func (m *Model) isFirstDecision() bool {
	return len(m.session.PlayerHand()) == 2 && !m.playerHit && m.splitCount == 0
}

// applyDeckSelection parses the typed deck count and opens the table.
func (m *Model) applyDeckSelection() tea.Cmd {
	value := m.input.Value()
	numDecks, err := strconv.Atoi(value)
	if err != nil {
		return m.setNotice("enter a number of decks between 1 and 8", true)
	}
	if err := m.session.NewShoe(numDecks); err != nil {
		return m.setNotice(err.Error(), true)
	}

	m.phase = PhaseTable
	m.input.Reset()
	m.input.Placeholder = "card (2-10, J, Q, K, A; suit optional)"
	m.input.CharLimit = 3 // room for a suited ten like "10S"
	logger.LogInfo("session started with %d decks", numDecks)
	return nil
}

// requestRecommendation queries the engine and records the decision.
func (m *Model) requestRecommendation() tea.Cmd {
	rec, err := m.session.Recommend(m.splitCount, m.isFirstDecision())
	if err != nil {
		m.rec = nil
		return m.setNotice(err.Error(), true)
	}
	m.rec = rec

	if rec.BustWarning {
		m.sounds.Play(sound.CueBustWarning)
	} else if rec.Deviation {
		m.sounds.Play(sound.CueDeviation)
	}

	return m.recordDecision(rec)
}

// recordDecision appends the decision to the history store, if one is
// wired. Failures only log: history must never block advising.
func (m *Model) recordDecision(rec *strategy.Recommendation) tea.Cmd {
	if m.store == nil {
		return nil
	}

	hand := m.session.PlayerHand()
	names := make([]string, len(hand))
	for i, r := range hand {
		names[i] = r.String()
	}
	upcard := ""
	if up, ok := m.session.DealerUpcard(); ok {
		upcard = up.String()
	}
	counts := m.session.Counts()

	record := history.HandRecord{
		PlayerHand:      names,
		DealerUpcard:    upcard,
		Action:          rec.Action.String(),
		Deviation:       rec.Deviation,
		RunningCount:    counts.RunningCount,
		TrueCount:       counts.TrueCount,
		BustProbability: rec.BustProbability,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := m.store.AppendHand(ctx, record); err != nil {
			logger.LogError("failed to record hand: %v", err)
		}
		return nil
	}
}

// saveSummary persists the session summary on exit.
func (m *Model) saveSummary() {
	if m.store == nil {
		return
	}

	counts := m.session.Counts()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := m.store.SaveSummary(ctx, history.SessionSummary{
		NumDecks:     m.session.NumDecks(),
		HandsPlayed:  m.handsPlayed,
		FinalRunning: counts.RunningCount,
		FinalTrue:    counts.TrueCount,
		StartedAt:    m.startedAt.Unix(),
	})
	if err != nil {
		logger.LogError("failed to save session summary: %v", err)
	}
}
