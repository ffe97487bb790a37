// prism classifies agent-produced text and routes it to the right
// presentation: highlighted code, a structured-data tree, or rendered
// text. One-shot via `prism classify`, interactive via `prism canvas`.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rafabd1/prism/internal/canvas"
	"github.com/rafabd1/prism/internal/classify"
	"github.com/rafabd1/prism/internal/config"
	"github.com/rafabd1/prism/internal/data"
	"github.com/rafabd1/prism/internal/logging"
	"github.com/rafabd1/prism/internal/render"
)

const version = "0.2.0"

var (
	cfg     *config.Config
	logger  *zap.Logger
	verbose bool

	langFlag   string
	renderFlag bool
	outFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "prism - output classification and rendering for agent turns",
	Long: `prism ingests one block of agent-produced text per turn and decides,
deterministically, how to present it: as highlighted code, as a
structured-data tree, or as plain text.

Classification is total: any input, the empty string included, maps to
exactly one of code, data, or text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify one payload from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readPayload(args)
		if err != nil {
			return err
		}

		override := classify.LangAuto
		if langFlag != "" {
			l, ok := classify.ParseLanguage(langFlag)
			if !ok {
				return fmt.Errorf("unknown language %q", langFlag)
			}
			override = l
		} else if cfg.View.Language != "" {
			// Config default; unrecognized values mean auto.
			if l, ok := classify.ParseLanguage(cfg.View.Language); ok {
				override = l
			}
		}

		res := classify.ClassifyWith(payload, override)
		logger.Debug("classified payload",
			zap.String("kind", res.Kind.String()),
			zap.String("lang", res.Lang),
			zap.Int("bytes", len(payload)),
		)

		if renderFlag {
			view := render.Route(res, render.ThemeByName(cfg.View.Theme), cfg.View.Wrap)
			fmt.Fprintln(cmd.OutOrStdout(), view.Content)
			return nil
		}

		switch res.Kind {
		case classify.KindCode:
			fmt.Fprintf(cmd.OutOrStdout(), "code\t%s\n", res.Lang)
		default:
			fmt.Fprintln(cmd.OutOrStdout(), res.Kind.String())
		}
		return nil
	},
}

var canvasCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Run the interactive output canvas",
	Long: `Runs the tabbed terminal canvas. When agent output is piped in, each
completed chunk triggers a fresh classification pass over the
accumulated payload; typed input is classified on enter. Slash
commands (/help) control theme, language override, export and more.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var stream io.Reader
		if info, err := os.Stdin.Stat(); err == nil && info.Mode()&os.ModeCharDevice == 0 {
			stream = os.Stdin
		}
		return canvas.Start(cfg, logger, stream)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Round-trip a structured-data document",
	Long: `Decodes a structured-data document and re-serializes it with member
order preserved. Fails when the input is not a single whole document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readPayload(args)
		if err != nil {
			return err
		}
		v, err := data.Decode(payload)
		if err != nil {
			return fmt.Errorf("input is not a structured-data document: %w", err)
		}
		out := v.Encode() + "\n"
		if outFlag != "" {
			if err := os.WriteFile(outFlag, []byte(out), 0o644); err != nil {
				return err
			}
			logger.Info("wrote export", zap.String("path", outFlag))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prism version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "prism %s\n", version)
	},
}

func readPayload(args []string) (string, error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	classifyCmd.Flags().StringVar(&langFlag, "lang", "", "language override for code results")
	classifyCmd.Flags().BoolVar(&renderFlag, "render", false, "print the routed view instead of the kind")
	exportCmd.Flags().StringVarP(&outFlag, "out", "o", "", "write the document to a file")

	rootCmd.AddCommand(classifyCmd, canvasCmd, exportCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
