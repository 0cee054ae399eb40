// Package session provides offline recording and replay tooling for the
// repetition-counting pipeline: a JSON session format, a deterministic
// replayer driven by a mock clock, and plot/report generators for
// inspecting a replayed session. The counting core itself persists
// nothing; recordings are analysis artifacts produced and consumed by the
// command-line tools.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RecordedSample is one raw position sample, stored as an offset from the
// recording start so sessions replay at any wall-clock time.
type RecordedSample struct {
	OffsetMs float64 `json:"offset_ms"`
	Value    float64 `json:"value"`
}

// SignalMark is one external action classification signal.
type SignalMark struct {
	OffsetMs float64 `json:"offset_ms"`
	Action   string  `json:"action"`
}

// Recording is a captured tracking session: the projected position signal
// plus the action classification timeline, ordered by offset.
type Recording struct {
	ID        string           `json:"id"`
	Exercise  string           `json:"exercise"`
	CreatedAt time.Time        `json:"created_at"`
	Samples   []RecordedSample `json:"samples"`
	Signals   []SignalMark     `json:"signals"`
}

// NewRecording creates an empty recording for the named exercise with a
// fresh session ID.
func NewRecording(exercise string, createdAt time.Time) *Recording {
	return &Recording{
		ID:        fmt.Sprintf("ses_%s", uuid.NewString()),
		Exercise:  exercise,
		CreatedAt: createdAt,
	}
}

// Validate checks structural invariants: identity fields present and
// offsets non-negative and non-decreasing within each stream.
func (r *Recording) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("recording has no id")
	}
	if r.Exercise == "" {
		return fmt.Errorf("recording %s has no exercise name", r.ID)
	}
	prev := -1.0
	for i, s := range r.Samples {
		if s.OffsetMs < 0 || s.OffsetMs < prev {
			return fmt.Errorf("recording %s: sample %d offset out of order", r.ID, i)
		}
		prev = s.OffsetMs
	}
	prev = -1.0
	for i, s := range r.Signals {
		if s.OffsetMs < 0 || s.OffsetMs < prev {
			return fmt.Errorf("recording %s: signal %d offset out of order", r.ID, i)
		}
		prev = s.OffsetMs
	}
	return nil
}

// Duration returns the span from the recording start to its last event.
func (r *Recording) Duration() time.Duration {
	last := 0.0
	if n := len(r.Samples); n > 0 {
		last = r.Samples[n-1].OffsetMs
	}
	if n := len(r.Signals); n > 0 && r.Signals[n-1].OffsetMs > last {
		last = r.Signals[n-1].OffsetMs
	}
	return time.Duration(last * float64(time.Millisecond))
}

// Save writes the recording as indented JSON.
func (r *Recording) Save(path string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recording: %w", err)
	}
	return nil
}

// Load reads and validates a recording from a JSON file.
func Load(path string) (*Recording, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	rec := &Recording{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to parse recording JSON: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
