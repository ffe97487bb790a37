package events

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AgentTurnMsg is a tea.Msg carrying one completed agent turn (or one
// completed streaming chunk). The canvas re-classifies from scratch on
// every one of these; there is no incremental state.
type AgentTurnMsg struct {
	Payload string
}

// StreamClosedMsg signals that the agent output stream ended.
type StreamClosedMsg struct{}

// ExitTUIMsg is sent to signal that the canvas should shut down.
type ExitTUIMsg struct{}

// Compile-time check to ensure our messages implement tea.Msg
var _ tea.Msg = AgentTurnMsg{}
var _ tea.Msg = StreamClosedMsg{}
var _ tea.Msg = ExitTUIMsg{}
