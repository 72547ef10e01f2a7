package core

// EventKind is a semantic input event, abstracted from physical key presses.
// Every event advances the game by exactly one tick, including Resize and Other.
type EventKind int

const (
	EventOther EventKind = iota // Unmapped key or message
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
	EventQuit
	EventResize
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventOther:
		return "Other"
	case EventMoveUp:
		return "MoveUp"
	case EventMoveDown:
		return "MoveDown"
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventQuit:
		return "Quit"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is one input delivered to the game loop.
type Event struct {
	Kind EventKind
	// Size carries the new terminal size for EventResize.
	Size Bounds
}

// NewEvent creates an event without a payload.
func NewEvent(kind EventKind) Event {
	return Event{Kind: kind}
}

// NewResizeEvent creates a resize event for a terminal of width x height cells.
func NewResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Size: Bounds{Height: height, Width: width}}
}

// Delta returns the cursor movement for a move event, or (0, 0).
func (e Event) Delta() (dRow, dCol int) {
	switch e.Kind {
	case EventMoveUp:
		return -1, 0
	case EventMoveDown:
		return 1, 0
	case EventMoveLeft:
		return 0, -1
	case EventMoveRight:
		return 0, 1
	}
	return 0, 0
}

// IsMove reports whether the event moves the cursor.
func (e Event) IsMove() bool {
	dr, dc := e.Delta()
	return dr != 0 || dc != 0
}
