package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printLine(fmt.Sprintf("Initialized habitctl storage at: %s", ctx.Store.Path()))
	return nil
}
