package widget

// State is the severity shown alongside the text of a widget
type State int

const (
	Idle State = iota
	Warning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Color used by the status bar for this state. Idle uses the bar default.
func (s State) Color() string {
	switch s {
	case Warning:
		return "#FFAE00"
	default:
		return ""
	}
}
