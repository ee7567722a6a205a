package core

// Action represents a semantic player action, abstracted from physical keys.
// The platform maps keys to actions and actions to game events.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, Up, W - the single game control
	ActionRestart           // R - restart after game over
	ActionScreenshot        // Ctrl+S - dump the current frame to a file
	ActionHelp              // ? - toggle the full key help
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
