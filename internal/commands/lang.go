package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rafabd1/prism/internal/classify"
)

// LangCmd implements the /lang command, the manual language override
// for code views.
type LangCmd struct {
	Canvas Controller
}

func (c *LangCmd) Name() string        { return "lang" }
func (c *LangCmd) Description() string { return "Overrides code language detection: /lang python|auto|..." }
func (c *LangCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	if len(args) != 1 {
		names := make([]string, 0, len(classify.Languages()))
		for _, l := range classify.Languages() {
			names = append(names, string(l))
		}
		fmt.Fprintf(output, "Usage: /lang %s\n", strings.Join(names, "|"))
		return nil
	}
	if err := c.Canvas.SetLanguage(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(output, "Language set to %s.\n", args[0])
	return nil
}
