package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitctl/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Today), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
