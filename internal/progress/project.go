package progress

// Status is the display state of one stage.
type Status int

const (
	StatusPending Status = iota
	StatusActive
	StatusComplete
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusComplete:
		return "complete"
	default:
		return "pending"
	}
}

// Project derives the per-stage display status from a tracker snapshot. It is
// a pure function of its inputs: stages before the current position are
// complete, the current position is active, later stages are pending. When
// the flow errored, the stage it errored at is the active one. Idle yields no
// projection; callers suppress the progress view entirely.
func Project(state State, stages []Step) map[Step]Status {
	if state.Step == StepIdle {
		return nil
	}

	out := make(map[Step]Status, len(stages))
	if state.Step == StepComplete {
		for _, stage := range stages {
			out[stage] = StatusComplete
		}
		return out
	}

	position := state.Step
	if state.Step == StepError {
		position = state.ErroredAt
	}
	for _, stage := range stages {
		switch {
		case stage < position:
			out[stage] = StatusComplete
		case stage == position:
			out[stage] = StatusActive
		default:
			out[stage] = StatusPending
		}
	}
	return out
}
