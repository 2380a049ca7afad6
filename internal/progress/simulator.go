package progress

import (
	"sync"
	"time"
)

// Schedule holds the delay offsets for the timer-driven stage advances. The
// uploading and extracting transitions happen synchronously at submit time
// and are not part of the schedule.
type Schedule struct {
	Analyzing  time.Duration
	Tailoring  time.Duration
	Generating time.Duration
}

// DefaultSchedule returns the stock offsets used when no configuration
// overrides them.
func DefaultSchedule() Schedule {
	return Schedule{
		Analyzing:  2 * time.Second,
		Tailoring:  5 * time.Second,
		Generating: 15 * time.Second,
	}
}

// Simulator produces the illusion of granular progress for a single atomic
// remote operation. Each scheduled advance fires at most once and only while
// the simulator has not been cancelled; the timers are independent of each
// other and of the network request. A Simulator is single-use: one Start per
// flow.
type Simulator struct {
	mu        sync.Mutex
	timers    []*time.Timer
	cancelled bool
	started   bool
}

// NewSimulator returns an idle simulator.
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Start schedules the three delayed advances. onAdvance runs on the timer
// goroutine; callers gate their state writes on a tracker token so a callback
// that raced Cancel still cannot touch terminal state.
func (s *Simulator) Start(schedule Schedule, onAdvance func(Step)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.cancelled {
		return
	}
	s.started = true

	advances := []struct {
		delay time.Duration
		step  Step
	}{
		{schedule.Analyzing, StepAnalyzing},
		{schedule.Tailoring, StepTailoring},
		{schedule.Generating, StepGenerating},
	}
	for _, adv := range advances {
		step := adv.step
		s.timers = append(s.timers, time.AfterFunc(adv.delay, func() {
			// The callback runs under the same lock Cancel takes, so once
			// Cancel returns no advance is running or can begin.
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.cancelled {
				return
			}
			onAdvance(step)
		}))
	}
}

// Cancel clears all not-yet-fired advances. Idempotent. After Cancel returns
// no onAdvance callback will begin; the orchestrator calls it before writing
// the terminal state.
func (s *Simulator) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled {
		return
	}
	s.cancelled = true
	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil
}
