package artifact

import (
	"log/slog"
	"sync"

	"resumetailor/internal/logging"
)

// Manager owns the single live artifact of a session. Materializing a new
// artifact or resetting the session releases the prior one exactly once.
type Manager struct {
	mu          sync.Mutex
	current     *Artifact
	logger      *slog.Logger
	releaseHook func(*Artifact)
}

// Option configures optional Manager behavior.
type Option func(*Manager)

// WithReleaseHook registers a callback invoked once per actual release
// (used in tests to observe lifecycle transitions).
func WithReleaseHook(fn func(*Artifact)) Option {
	return func(m *Manager) {
		m.releaseHook = fn
	}
}

// NewManager constructs an artifact manager.
func NewManager(logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{logger: logging.NewComponentLogger(logger, "artifact")}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize wraps the response bytes and metadata into the new live
// artifact, releasing any previously held artifact first.
func (m *Manager) Materialize(data []byte, meta Metadata) *Artifact {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.releaseLocked(m.current)
	}
	m.current = newArtifact(data, meta)
	m.logger.Debug("artifact materialized",
		logging.String("artifact_id", m.current.id),
		logging.String("suggested_name", m.current.suggestedName),
		logging.Int("bytes", len(data)),
	)
	return m.current
}

// Current returns the live artifact, nil when none exists.
func (m *Manager) Current() *Artifact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Release frees the live artifact. Safe to call when none exists and safe to
// call repeatedly.
func (m *Manager) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return
	}
	m.releaseLocked(m.current)
	m.current = nil
}

func (m *Manager) releaseLocked(a *Artifact) {
	if !a.release() {
		return
	}
	m.logger.Debug("artifact released", logging.String("artifact_id", a.id))
	if m.releaseHook != nil {
		m.releaseHook(a)
	}
}
