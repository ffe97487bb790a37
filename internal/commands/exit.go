package commands

import (
	"context"
	"io"
)

// ExitCmd implements the /exit command.
type ExitCmd struct {
	Canvas Controller
}

func (c *ExitCmd) Name() string        { return "exit" }
func (c *ExitCmd) Description() string { return "Exits the canvas." }
func (c *ExitCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	c.Canvas.RequestExit()
	return nil
}
