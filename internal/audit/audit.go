// Package audit captures the per-scoring-call breakdown trail. The scorer
// records every breakdown it produces through a Recorder; what happens to
// the entries (memory, logs, external storage) is the recorder's concern.
package audit

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/finplan/finplan/internal/domain"
)

// Recorder receives one entry per risk-scoring call.
type Recorder interface {
	Record(entry domain.RiskScoreBreakdown)
}

// NopRecorder discards all entries.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(domain.RiskScoreBreakdown) {}

// MemoryRecorder keeps entries in memory, newest last. Safe for
// concurrent use.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []domain.RiskScoreBreakdown
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record implements Recorder.
func (m *MemoryRecorder) Record(entry domain.RiskScoreBreakdown) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
}

// Entries returns a copy of all recorded entries.
func (m *MemoryRecorder) Entries() []domain.RiskScoreBreakdown {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.RiskScoreBreakdown, len(m.entries))
	copy(out, m.entries)
	return out
}

// LogRecorder emits entries as structured log events.
type LogRecorder struct {
	log zerolog.Logger
}

// NewLogRecorder creates a recorder writing to the given logger.
func NewLogRecorder(log zerolog.Logger) *LogRecorder {
	return &LogRecorder{log: log.With().Str("component", "audit").Logger()}
}

// Record implements Recorder.
func (l *LogRecorder) Record(entry domain.RiskScoreBreakdown) {
	l.log.Info().
		Str("entry_id", entry.ID).
		Time("timestamp", entry.Timestamp).
		Str("base_score", entry.BaseScore.StringFixed(2)).
		Str("economic_adjustment", entry.EconomicAdjustment.StringFixed(2)).
		Str("goal_adjustment", entry.GoalAdjustment.StringFixed(2)).
		Int("final_score", entry.FinalScore).
		Str("rating", string(entry.Rating)).
		Str("reason", entry.Reason).
		Msg("risk score computed")
}

// MultiRecorder fans entries out to several recorders.
type MultiRecorder []Recorder

// Record implements Recorder.
func (m MultiRecorder) Record(entry domain.RiskScoreBreakdown) {
	for _, r := range m {
		r.Record(entry)
	}
}
