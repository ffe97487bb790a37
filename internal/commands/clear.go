package commands

import (
	"context"
	"fmt"
	"io"
)

// ClearCmd implements the /clear command.
type ClearCmd struct {
	Canvas Controller
}

func (c *ClearCmd) Name() string        { return "clear" }
func (c *ClearCmd) Description() string { return "Clears the output views." }
func (c *ClearCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	c.Canvas.ClearOutput()
	fmt.Fprintln(output, "Output cleared.")
	return nil
}
