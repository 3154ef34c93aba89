package core

// Action represents a semantic action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionTrigger        // Space, Enter - perform the scene's next external write
	ActionReset          // R - rebuild the scene from scratch
	ActionPause          // P - freeze the frame loop
	ActionUp             // K, Up arrow - menu selection
	ActionDown           // J, Down arrow - menu selection
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionJournal        // Tab - open the run journal
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTrigger:
		return "Trigger"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionJournal:
		return "Journal"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
