package commands

import (
	"context"
	"io"
)

// Command defines the interface for executable slash commands.
type Command interface {
	Name() string        // Returns the command name (e.g., "help")
	Description() string // Returns a brief description
	// Executes the command, writing output to the provided writer.
	Execute(ctx context.Context, args []string, output io.Writer) error
}

// Controller is the surface a command needs from the owning canvas.
// An interface keeps this package free of the canvas import (and the
// cycle that would come with it).
type Controller interface {
	// SetTheme switches the active theme ("dark" or "light").
	SetTheme(name string) error
	// SetLanguage sets the language override for code views; "auto"
	// returns control to the sniffer.
	SetLanguage(tag string) error
	// ExportLast writes the last structured-data result to a file and
	// returns the path written.
	ExportLast() (string, error)
	// ClearOutput resets the output views.
	ClearOutput()
	// RequestExit asks the canvas to shut down.
	RequestExit()
}
