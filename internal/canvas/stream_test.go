package canvas

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rafabd1/prism/pkg/events"
)

// errReader fails after its wrapped reader is drained.
type errReader struct {
	err error
}

func (r errReader) Read(p []byte) (int, error) { return 0, r.err }

func collect(stream io.Reader, logger *zap.Logger) []tea.Msg {
	var msgs []tea.Msg
	forwardStream(stream, func(m tea.Msg) { msgs = append(msgs, m) }, logger)
	return msgs
}

func TestForwardStreamChunks(t *testing.T) {
	msgs := collect(strings.NewReader("line1\nline2\n\nline3\n"), zap.NewNop())

	require.Len(t, msgs, 3)
	assert.Equal(t, events.AgentTurnMsg{Payload: "line1\nline2"}, msgs[0])
	// The final flush re-submits the whole accumulated payload: each
	// chunk is a fresh classification pass over everything so far.
	assert.Equal(t, events.AgentTurnMsg{Payload: "line1\nline2\n\nline3"}, msgs[1])
	assert.Equal(t, events.StreamClosedMsg{}, msgs[2])
}

func TestForwardStreamEmpty(t *testing.T) {
	msgs := collect(strings.NewReader(""), zap.NewNop())
	require.Len(t, msgs, 1)
	assert.Equal(t, events.StreamClosedMsg{}, msgs[0])
}

// A read error is not a clean EOF: what was buffered still flushes
// best-effort, but the failure is logged before the stream closes.
func TestForwardStreamReadError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	broken := io.MultiReader(strings.NewReader("partial\n"), errReader{err: errors.New("pipe broke")})

	msgs := collect(broken, zap.New(core))

	require.Len(t, msgs, 2)
	assert.Equal(t, events.AgentTurnMsg{Payload: "partial"}, msgs[0])
	assert.Equal(t, events.StreamClosedMsg{}, msgs[1])

	entries := logs.FilterMessage("agent stream read failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "pipe broke")
}
