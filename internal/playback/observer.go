package playback

// Observer is informed of every State change. The Controller has exactly
// one; fan-out, if needed, is the observer's business.
type Observer interface {
	PlaybackChanged(s State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(s State)

// PlaybackChanged calls f(s).
func (f ObserverFunc) PlaybackChanged(s State) { f(s) }
