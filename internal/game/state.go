// Package game owns the simulation state, the per-tick system order and the
// terminal loop around it.
package game

// RunState says whether the next frame advances the simulation.
type RunState int

const (
	// RunStatePaused waits for player input before the next tick.
	RunStatePaused RunState = iota
	// RunStateRunning advances the simulation once, then pauses.
	RunStateRunning
)

// String returns a human-readable state name.
func (s RunState) String() string {
	switch s {
	case RunStatePaused:
		return "paused"
	case RunStateRunning:
		return "running"
	default:
		return "unknown"
	}
}
