package sim

type Phase int

const (
	Running Phase = iota
	Resizing
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Resizing:
		return "resizing"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Events are the pending asynchronous inputs observed at the top of a tick.
type Events struct {
	Resize bool
	Quit   bool
}

// Transition returns the phase the loop enters given the current phase and
// pending events. Stopped is terminal and quitting wins over resizing.
func Transition(p Phase, ev Events) Phase {
	switch {
	case p == Stopped, ev.Quit:
		return Stopped
	case ev.Resize:
		return Resizing
	}
	return Running
}
