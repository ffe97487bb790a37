package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ExportCmd implements the /export command. It round-trips the last
// structured-data result back to its text form and writes it out.
type ExportCmd struct {
	Canvas Controller
}

func (c *ExportCmd) Name() string        { return "export" }
func (c *ExportCmd) Description() string { return "Exports the last data result to a file." }
func (c *ExportCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	path, err := c.Canvas.ExportLast()
	if err != nil {
		return errors.Wrap(err, "export failed")
	}
	fmt.Fprintf(output, "Exported to %s\n", path)
	return nil
}
