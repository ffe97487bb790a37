package canvas

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rafabd1/prism/internal/classify"
	"github.com/rafabd1/prism/internal/data"
)

// Turn is one classified agent turn.
type Turn struct {
	ID      uuid.UUID
	Payload string
	Result  classify.Result
	At      time.Time
}

// Session accumulates the turns of one canvas run and owns the export
// of decoded data. The classifier itself is stateless; everything that
// persists across payloads lives here.
type Session struct {
	ID        uuid.UUID
	turns     []Turn
	exportDir string
	logger    *zap.Logger
}

// NewSession creates a session. logger may not be nil; pass
// zap.NewNop() when logging is off.
func NewSession(exportDir string, logger *zap.Logger) *Session {
	return &Session{
		ID:        uuid.New(),
		exportDir: exportDir,
		logger:    logger,
	}
}

// Classify runs one classification pass and records the turn.
func (s *Session) Classify(payload string, override classify.Language) classify.Result {
	res := classify.ClassifyWith(payload, override)
	turn := Turn{
		ID:      uuid.New(),
		Payload: payload,
		Result:  res,
		At:      time.Now(),
	}
	s.turns = append(s.turns, turn)
	s.logger.Debug("classified turn",
		zap.String("session", s.ID.String()),
		zap.String("turn", turn.ID.String()),
		zap.String("kind", res.Kind.String()),
		zap.String("lang", res.Lang),
		zap.Int("bytes", len(payload)),
	)
	return res
}

// Turns returns the recorded turns, oldest first.
func (s *Session) Turns() []Turn { return s.turns }

// Clear drops the recorded turns. The session id stays.
func (s *Session) Clear() { s.turns = nil }

// lastData returns the decoded value of the most recent data turn.
func (s *Session) lastData() (*data.Value, uuid.UUID, bool) {
	for i := len(s.turns) - 1; i >= 0; i-- {
		if s.turns[i].Result.Kind == classify.KindData {
			return s.turns[i].Result.Value, s.turns[i].ID, true
		}
	}
	return nil, uuid.Nil, false
}

// Export re-serializes the most recent data result (key order
// preserved) and writes it next to the configured export dir. Returns
// the path written.
func (s *Session) Export() (string, error) {
	v, id, ok := s.lastData()
	if !ok {
		return "", errors.New("no structured-data result to export")
	}
	name := fmt.Sprintf("prism-export-%s.json", id.String()[:8])
	path := filepath.Join(s.exportDir, name)
	if err := os.WriteFile(path, []byte(v.Encode()+"\n"), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	s.logger.Info("exported data result", zap.String("path", path))
	return path, nil
}
