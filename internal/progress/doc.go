// Package progress owns the submission flow state machine: the step
// enumeration, the tracker holding the single live state, the timer-driven
// stage simulator, and the pure projection used by rendering layers.
//
// The remote service exposes no progress channel, so the in-flight stages
// after extraction are simulated on independent timers. Correctness hinges on
// one ordering rule: when the real request settles, the simulator is
// cancelled and the flow token invalidated before the terminal state is
// written, so a stale timer can never overwrite complete or error.
package progress
