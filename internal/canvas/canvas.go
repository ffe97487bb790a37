// Package canvas is the terminal output canvas: a tabbed Bubble Tea
// view (Text / Code / Data) fed by classified agent turns, plus a
// command line for the slash commands.
package canvas

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rafabd1/prism/internal/classify"
	"github.com/rafabd1/prism/internal/commands"
	"github.com/rafabd1/prism/internal/config"
	"github.com/rafabd1/prism/internal/render"
	"github.com/rafabd1/prism/pkg/events"
)

// tabs in display order; indexes match render.Tab values.
var tabOrder = []render.Tab{render.TabText, render.TabCode, render.TabData}

// Model represents the state of the canvas TUI.
type Model struct {
	viewport viewport.Model
	textarea textarea.Model

	session  *Session
	registry *commands.Registry
	logger   *zap.Logger

	theme    render.Theme
	override classify.Language
	wrap     int

	activeTab   render.Tab
	contents    [3]string
	lastPayload string
	hasPayload  bool

	statusMessage string
	exitRequested bool
	ready         bool

	titleStyle    lipgloss.Style
	activeTabSty  lipgloss.Style
	idleTabSty    lipgloss.Style
	statusStyle   lipgloss.Style
	errorStyle    lipgloss.Style
}

// New initializes a canvas model from configuration.
func New(cfg *config.Config, logger *zap.Logger) (*Model, error) {
	ta := textarea.New()
	ta.Placeholder = "Paste agent output or type a /command..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.SetWidth(50) // adjusted on the first WindowSizeMsg
	ta.SetHeight(1)
	ta.CharLimit = 0 // pasted payloads can be arbitrarily large
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	theme := render.ThemeByName(cfg.View.Theme)
	// An unrecognized configured language means auto, same as the CLI
	// path; it must never become a hard override that shadows explicit
	// fence tags.
	override := classify.LangAuto
	if l, ok := classify.ParseLanguage(cfg.View.Language); ok {
		override = l
	}

	m := &Model{
		textarea:      ta,
		session:       NewSession(cfg.Export.Dir, logger),
		logger:        logger,
		theme:         theme,
		override:      override,
		wrap:          cfg.View.Wrap,
		statusMessage: "Ready. /help lists commands.",
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		activeTabSty:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Underline(true),
		idleTabSty:    lipgloss.NewStyle().Foreground(theme.TextLight),
		statusStyle:   lipgloss.NewStyle().Foreground(theme.TextLight),
		errorStyle:    lipgloss.NewStyle().Foreground(theme.Error),
	}

	registry := commands.NewRegistry()
	cmdsToRegister := []commands.Command{
		&commands.HelpCmd{Registry: registry},
		&commands.ThemeCmd{Canvas: m},
		&commands.LangCmd{Canvas: m},
		&commands.ExportCmd{Canvas: m},
		&commands.ClearCmd{Canvas: m},
		&commands.ExitCmd{Canvas: m},
	}
	for _, cmd := range cmdsToRegister {
		if err := registry.Register(cmd); err != nil {
			return nil, errors.Wrapf(err, "registering command %s", cmd.Name())
		}
	}
	m.registry = registry
	return m, nil
}

// Init is the first function executed when the Bubble Tea program starts.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages (events) and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handled keys never reach the components, otherwise the
		// textarea would swallow tab and enter as input runes.
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.activeTab = tabOrder[(int(m.activeTab)+1)%len(tabOrder)]
			m.viewport.SetContent(m.contents[m.activeTab])
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input != "" {
				if cmd := m.handleInput(input); cmd != nil {
					return m, cmd
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		verticalMarginHeight := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMarginHeight)
			m.viewport.YPosition = headerHeight
			m.viewport.SetContent(m.contents[m.activeTab])
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMarginHeight
		}
		m.textarea.SetWidth(msg.Width)

	case events.AgentTurnMsg:
		m.showPayload(msg.Payload)

	case events.StreamClosedMsg:
		m.statusMessage = "Agent stream ended."

	case events.ExitTUIMsg:
		return m, tea.Quit
	}

	var (
		vpCmd tea.Cmd
		taCmd tea.Cmd
	)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.textarea, taCmd = m.textarea.Update(msg)
	return m, tea.Batch(vpCmd, taCmd)
}

// showPayload classifies one agent turn and routes the result into
// the matching tab, which becomes active.
func (m *Model) showPayload(payload string) {
	res := m.session.Classify(payload, m.override)
	view := render.Route(res, m.theme, m.contentWidth())
	m.contents[view.Tab] = view.Content
	m.activeTab = view.Tab
	m.lastPayload = payload
	m.hasPayload = true
	m.statusMessage = view.Title
	m.viewport.SetContent(m.contents[m.activeTab])
}

// rerender re-routes the last payload after a theme or language
// change. It does not record a new session turn.
func (m *Model) rerender() {
	if !m.hasPayload {
		return
	}
	res := classify.ClassifyWith(m.lastPayload, m.override)
	view := render.Route(res, m.theme, m.contentWidth())
	m.contents[view.Tab] = view.Content
	m.activeTab = view.Tab
	m.viewport.SetContent(m.contents[m.activeTab])
}

// handleInput dispatches a submitted line: slash commands go through
// the registry, anything else is an agent payload.
func (m *Model) handleInput(input string) tea.Cmd {
	if !strings.HasPrefix(input, "/") {
		m.showPayload(input)
		return nil
	}

	fields := strings.Fields(strings.TrimPrefix(input, "/"))
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := m.registry.Get(fields[0])
	if !ok {
		m.statusMessage = m.errorStyle.Render(fmt.Sprintf("Unknown command: /%s", fields[0]))
		return nil
	}

	var buf bytes.Buffer
	if err := cmd.Execute(context.Background(), fields[1:], &buf); err != nil {
		m.statusMessage = m.errorStyle.Render(err.Error())
		m.logger.Warn("command failed", zap.String("command", fields[0]), zap.Error(err))
		return nil
	}
	if out := strings.TrimSpace(buf.String()); out != "" {
		m.statusMessage = out
	}
	if m.exitRequested {
		return func() tea.Msg { return events.ExitTUIMsg{} }
	}
	return nil
}

func (m *Model) contentWidth() int {
	if m.ready && m.viewport.Width > 0 {
		return m.viewport.Width
	}
	return m.wrap
}

// View renders the current UI.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return fmt.Sprintf(
		"%s\n%s\n%s",
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}

// headerView renders the title and the tab bar.
func (m *Model) headerView() string {
	title := m.titleStyle.Render("Prism Output Canvas")
	tabs := make([]string, 0, len(tabOrder))
	for _, t := range tabOrder {
		if t == m.activeTab {
			tabs = append(tabs, m.activeTabSty.Render(t.String()))
		} else {
			tabs = append(tabs, m.idleTabSty.Render(t.String()))
		}
	}
	bar := strings.Join(tabs, "  ")
	line := strings.Repeat("─", max(m.viewport.Width, 1))
	return lipgloss.JoinVertical(lipgloss.Left, title+"   "+bar, line)
}

// footerView renders the status line and the input area.
func (m *Model) footerView() string {
	return m.statusStyle.Render(m.statusMessage) + "\n" + m.textarea.View()
}

// --- commands.Controller ---

// SetTheme switches the active theme and re-renders the current view.
func (m *Model) SetTheme(name string) error {
	if name != "dark" && name != "light" {
		return errors.Errorf("unknown theme %q (want dark or light)", name)
	}
	m.theme = render.ThemeByName(name)
	m.rerender()
	return nil
}

// SetLanguage sets the code language override; "auto" re-enables
// detection. Tags outside the enumeration are rejected here because
// the user picks from a closed list (author tags in fences, by
// contrast, are honored verbatim).
func (m *Model) SetLanguage(tag string) error {
	lang, ok := classify.ParseLanguage(tag)
	if !ok {
		return errors.Errorf("unknown language %q", tag)
	}
	m.override = lang
	m.rerender()
	return nil
}

// ExportLast writes the last data result to the export directory.
func (m *Model) ExportLast() (string, error) {
	return m.session.Export()
}

// ClearOutput resets every tab and the session history.
func (m *Model) ClearOutput() {
	m.contents = [3]string{}
	m.session.Clear()
	m.hasPayload = false
	m.lastPayload = ""
	m.activeTab = render.TabText
	m.viewport.SetContent("")
}

// RequestExit asks the canvas to shut down after the current command.
func (m *Model) RequestExit() {
	m.exitRequested = true
}

// Start initializes and runs the Bubble Tea program. When stream is
// not nil (agent output piped in), a goroutine forwards it: each
// completed chunk re-submits the accumulated payload for a fresh
// classification pass.
func Start(cfg *config.Config, logger *zap.Logger, stream io.Reader) error {
	m, err := New(cfg, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())

	if stream != nil {
		go forwardStream(stream, p.Send, logger)
	}

	_, err = p.Run()
	return err
}

// forwardStream turns a piped agent stream into canvas messages. A
// blank line completes a chunk and re-submits the accumulated payload;
// whatever is buffered at the end is flushed best-effort, a read error
// included (it is logged, since EOF and a broken pipe must stay
// distinguishable). StreamClosedMsg always goes out last.
func forwardStream(stream io.Reader, send func(tea.Msg), logger *zap.Logger) {
	var acc strings.Builder
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" && acc.Len() > 0 {
			send(events.AgentTurnMsg{Payload: strings.TrimRight(acc.String(), "\n")})
		}
		acc.WriteString(line)
		acc.WriteString("\n")
	}
	if acc.Len() > 0 {
		send(events.AgentTurnMsg{Payload: strings.TrimRight(acc.String(), "\n")})
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("agent stream read failed", zap.Error(err))
	}
	send(events.StreamClosedMsg{})
}
