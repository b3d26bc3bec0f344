package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
)

// Lipgloss styles shared by the views
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	zoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	promptStyle = lipgloss.NewStyle().MarginTop(1)
)

// gridOrder lays the tracking grid out high cards first, the way a
// counter scans a table.
var gridOrder = []card.Rank{
	card.RankA, card.RankK, card.RankQ, card.RankJ, card.Rank10,
	card.Rank9, card.Rank8, card.Rank7, card.Rank6, card.Rank5,
	card.Rank4, card.Rank3, card.Rank2,
}
