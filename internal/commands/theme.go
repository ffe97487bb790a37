package commands

import (
	"context"
	"fmt"
	"io"
)

// ThemeCmd implements the /theme command.
type ThemeCmd struct {
	Canvas Controller
}

func (c *ThemeCmd) Name() string        { return "theme" }
func (c *ThemeCmd) Description() string { return "Switches the color theme: /theme dark|light." }
func (c *ThemeCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	if len(args) != 1 {
		fmt.Fprintln(output, "Usage: /theme dark|light")
		return nil
	}
	if err := c.Canvas.SetTheme(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(output, "Theme set to %s.\n", args[0])
	return nil
}
