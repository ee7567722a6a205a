package game

// Phase is the game loop's state.
type Phase int

const (
	// PhaseAwaitingStart shows instructions and the countdown.
	PhaseAwaitingStart Phase = iota
	// PhaseRunning advances the simulation every tick.
	PhaseRunning
	// PhaseOver waits for a restart after a collision or out-of-bounds.
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhaseRunning:
		return "Running"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// EventKind identifies an input to the state machine.
type EventKind int

const (
	// EventPress is the single control going down.
	EventPress EventKind = iota
	// EventRelease is the control going up.
	EventRelease
	// EventSecond is one countdown second elapsing.
	EventSecond
	// EventRestart starts a new run with the name carried by the event.
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "Press"
	case EventRelease:
		return "Release"
	case EventSecond:
		return "Second"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Event is a single entry of the game's event queue.
type Event struct {
	Kind EventKind
	Name string // Player name, only read for EventRestart
}

// Press returns a control-down event.
func Press() Event { return Event{Kind: EventPress} }

// Release returns a control-up event.
func Release() Event { return Event{Kind: EventRelease} }

// Second returns a countdown event.
func Second() Event { return Event{Kind: EventSecond} }

// Restart returns a restart event for the given player name.
// The name is opaque: an empty name is kept as is.
func Restart(name string) Event { return Event{Kind: EventRestart, Name: name} }
