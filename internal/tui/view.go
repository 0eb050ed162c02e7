package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitctl/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == stateAddHabit && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("habitctl — today (%s)", m.today)))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("(no scheduled habits)"))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		mark := "[ ]"
		if row.Done {
			mark = doneStyle.Render("[x]")
		}
		progress := fmt.Sprintf("%d/%d", row.Quantity, row.Target)
		if row.Period == models.PeriodWeek {
			progress += " (weekly)"
		}
		line := fmt.Sprintf("%s %s %s", mark, row.Name, dimStyle.Render(progress))
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		b.String(),
		m.help.View(m.keys),
	)
}
