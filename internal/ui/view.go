package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
)

func (m *Model) View() string {
	switch m.phase {
	case PhaseDeckSelect:
		return docStyle.Render(m.deckSelectView())
	case PhaseHelp:
		return docStyle.Render(helpView())
	default:
		return docStyle.Render(m.tableView())
	}
}

func (m *Model) deckSelectView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle(card.Spade.String() + " Blackjack Advisor"))
	sb.WriteString("\n\n")
	sb.WriteString("How many decks are in the shoe? (1-8)\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.noticeView())
	sb.WriteString(promptStyle.Render(dimStyle.Render("enter to start · esc to quit")))

	return sb.String()
}

func (m *Model) tableView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle(card.Spade.String() + " Blackjack Advisor"))
	sb.WriteString("\n\n")

	sb.WriteString(m.trackingGridView())
	sb.WriteString("\n")

	hands := lipgloss.JoinHorizontal(lipgloss.Top,
		m.handsView(), " ", m.countsView())
	sb.WriteString(hands)
	sb.WriteString("\n")

	if m.rec != nil {
		sb.WriteString(m.recommendationView())
		sb.WriteString("\n")
	}

	sb.WriteString(m.inputView())
	sb.WriteString("\n")
	sb.WriteString(m.noticeView())
	sb.WriteString(dimStyle.Render("tab zone · enter add card · ^R advice · ^S split · ^N next hand · ^X new shoe · ? help"))

	return sb.String()
}

// trackingGridView renders the 13-rank remaining-count grid.
func (m *Model) trackingGridView() string {
	cells := make([]string, 0, len(gridOrder))
	for _, r := range gridOrder {
		remaining := m.session.RemainingCount(r)

		countStyle := valueStyle
		if remaining == 0 {
			countStyle = errorStyle
		} else if remaining <= m.session.NumDecks() {
			countStyle = warnStyle
		}

		cell := lipgloss.JoinVertical(lipgloss.Center,
			labelStyle.Render(fmt.Sprintf("%3s", r)),
			countStyle.Render(fmt.Sprintf("%3d", remaining)),
		)
		cells = append(cells, cell)
	}

	grid := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return boxStyle.Render(grid)
}

func (m *Model) handsView() string {
	var sb strings.Builder

	player := m.session.PlayerHand()
	total, soft := player.Total()
	totalText := ""
	if len(player) > 0 {
		totalText = fmt.Sprintf(" = %d", total)
		if soft {
			totalText += " (soft)"
		}
	}
	sb.WriteString(labelStyle.Render("Player: "))
	sb.WriteString(valueStyle.Render(player.String() + totalText))
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render("Dealer: "))
	sb.WriteString(valueStyle.Render(m.session.DealerHand().String()))
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render("Wasted: "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%d cards", m.session.WastedCount())))
	if m.splitCount > 0 {
		sb.WriteString(labelStyle.Render("  Splits: "))
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%d", m.splitCount)))
	}

	return boxStyle.Render(sb.String())
}

func (m *Model) countsView() string {
	counts := m.session.Counts()

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Running count: "))
	sb.WriteString(countValueView(float64(counts.RunningCount), fmt.Sprintf("%+d", counts.RunningCount)))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("True count:    "))
	sb.WriteString(countValueView(counts.TrueCount, fmt.Sprintf("%+.1f", counts.TrueCount)))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Remaining:     "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%d cards (%.1f decks)", counts.RemainingTotal, counts.RemainingDecks)))
	sb.WriteString("\n")
	edge := m.session.EdgeEstimate()
	sb.WriteString(labelStyle.Render("Edge est.:     "))
	sb.WriteString(countValueView(edge, fmt.Sprintf("%+.1f%%", edge*100)))

	return boxStyle.Render(sb.String())
}

// countValueView colors a count green when the shoe favors the player.
func countValueView(value float64, text string) string {
	if value > 0 {
		return goodStyle.Render(text)
	}
	if value < 0 {
		return errorStyle.Render(text)
	}
	return valueStyle.Render(text)
}

func (m *Model) recommendationView() string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("Advice: "))
	sb.WriteString(goodStyle.Render(m.rec.Action.String()))
	sb.WriteString("\n")
	sb.WriteString(m.rec.Explanation)

	if m.rec.BustKnown {
		sb.WriteString("\n")
		line := fmt.Sprintf("Bust chance if you hit: %.0f%%", m.rec.BustProbability*100)
		if m.rec.BustWarning {
			sb.WriteString(warnStyle.Render("⚠ " + line))
		} else {
			sb.WriteString(labelStyle.Render(line))
		}
	}

	if m.rec.InsuranceAdvised {
		sb.WriteString("\n")
		sb.WriteString(warnStyle.Render("Count favors taking insurance"))
	}

	return boxStyle.Render(sb.String())
}

func (m *Model) inputView() string {
	zone := zoneStyle.Render(strings.ToUpper(m.zone.String()))
	return fmt.Sprintf("%s %s %s", labelStyle.Render("Add card to"), zone, m.input.View())
}

func (m *Model) noticeView() string {
	if m.notice == "" {
		return "\n"
	}
	if m.isErr {
		return errorStyle.Render(m.notice) + "\n"
	}
	return m.notice + "\n"
}

func helpView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle("📖 Keys"))
	sb.WriteString("\n\n")

	sb.WriteString("Card entry\n")
	sb.WriteString("  type a rank (2-10, J, Q, K, A) and press enter;\n")
	sb.WriteString("  a suit suffix is fine too (AH, 10S) and is ignored\n")
	sb.WriteString("  tab    switch the target zone (player / dealer / wasted)\n")
	sb.WriteString("  esc    clear the input field\n\n")

	sb.WriteString("Advice\n")
	sb.WriteString("  ^R     recommend an action for the current hand\n")
	sb.WriteString("  ^S     note that you split (advice adjusts to the re-split cap)\n\n")

	sb.WriteString("Table\n")
	sb.WriteString("  ^N     next hand: clears hands, keeps the count\n")
	sb.WriteString("  ^X     new shoe: reshuffle, count resets\n")
	sb.WriteString("  ^C     quit\n\n")

	sb.WriteString("Every card you see should be entered, including other\n")
	sb.WriteString("players' cards (use the wasted zone): the count and the\n")
	sb.WriteString("bust probabilities depend on the full shoe composition.\n\n")

	sb.WriteString(dimStyle.Render("esc to go back"))

	return boxStyle.Render(sb.String())
}
