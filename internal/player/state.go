// internal/player/state.go
package player

// State is the lifecycle of a single Audio instance.
//
//	┌─────────┐  metadata   ┌─────────┐   end    ┌───────┐
//	│ Loading │ ──────────▶ │ Playing │ ───────▶ │ Ended │
//	└─────────┘             └─────────┘          └───────┘
//	     │                     ▲  │                  │
//	     │ pause        resume │  │ pause      play  │
//	     ▼                     │  ▼                  ▼
//	 (stays Loading,      ┌─────────┐           Playing (from 0)
//	  starts Paused)      │ Paused  │
//	                      └─────────┘
//
// Any state moves to Closed on Close. Closed is terminal.
type State int

const (
	Loading State = iota
	Playing
	Paused
	Ended
	Closed
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanResume returns true if the state allows resuming.
func (s State) CanResume() bool {
	return s == Paused || s == Ended
}
