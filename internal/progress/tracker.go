package progress

import (
	"sync"

	"resumetailor/internal/services"
)

// State is a point-in-time snapshot of the tracker.
type State struct {
	Step         Step
	ErrorMessage string
	// ErroredAt is the stage the flow was at when it failed; only meaningful
	// when Step is StepError.
	ErroredAt Step
}

// Token authorizes state writes for one submission flow. Tokens issued by
// Begin become stale as soon as a terminal state is written or the tracker is
// reset, so a late timer callback holding an old token can never overwrite
// complete or error.
type Token struct {
	epoch uint64
}

// Tracker owns the single live ProgressState for a session. All writes are
// serialized through its mutex and gated on the caller's token, which is the
// cancel-before-terminal-write rule enforced in code.
type Tracker struct {
	mu      sync.Mutex
	epoch   uint64
	step    Step
	message string
	errored Step
}

// NewTracker returns a tracker in the idle state.
func NewTracker() *Tracker {
	return &Tracker{step: StepIdle}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{Step: t.step, ErrorMessage: t.message, ErroredAt: t.errored}
}

// Begin starts a new flow. Only idle and error states accept a submit: a flow
// already in flight is rejected with services.ErrBusy, and a completed
// session is rejected with services.ErrCompleted until Reset releases the
// result. A prior error state is cleared on entry.
func (t *Tracker) Begin() (Token, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.step.InFlight() {
		return Token{}, services.ErrBusy
	}
	if t.step == StepComplete {
		return Token{}, services.ErrCompleted
	}
	t.epoch++
	t.step = StepUploading
	t.message = ""
	t.errored = StepIdle
	return Token{epoch: t.epoch}, nil
}

// Advance moves the flow to a later in-flight stage. Returns false without
// writing when the token is stale or the flow already reached a terminal
// state.
func (t *Tracker) Advance(tok Token, step Step) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok.epoch != t.epoch {
		return false
	}
	if t.step.Terminal() || !step.InFlight() {
		return false
	}
	if step <= t.step {
		return false
	}
	t.step = step
	return true
}

// Complete writes the success terminal state and invalidates the token so no
// later write under it can succeed.
func (t *Tracker) Complete(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok.epoch != t.epoch || t.step.Terminal() {
		return false
	}
	t.epoch++
	t.step = StepComplete
	t.message = ""
	return true
}

// Fail writes the error terminal state, recording the stage the flow errored
// at, and invalidates the token.
func (t *Tracker) Fail(tok Token, message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok.epoch != t.epoch || t.step.Terminal() {
		return false
	}
	t.epoch++
	t.errored = t.step
	t.step = StepError
	t.message = message
	return true
}

// Reset returns the tracker to idle. It is a no-op while a flow is in flight;
// the user-triggered transitions out of a terminal state are the only resets.
func (t *Tracker) Reset() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.step.InFlight() {
		return false
	}
	t.epoch++
	t.step = StepIdle
	t.message = ""
	t.errored = StepIdle
	return true
}
