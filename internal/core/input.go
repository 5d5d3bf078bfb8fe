package core

// KeyCode is a raw key code as reported by the keyboard source.
// Printable keys report their character; arrow keys arrive as an extended
// prefix followed by a second code.
type KeyCode int

// Key codes understood by ReadAction.
const (
	KeyLeft       KeyCode = 'a'
	KeyLeftAlt    KeyCode = 'A'
	KeyRight      KeyCode = 'd'
	KeyRightAlt   KeyCode = 'D'
	KeyFire       KeyCode = ' '
	KeyQuit       KeyCode = 'q'
	KeyQuitAlt    KeyCode = 'Q'
	KeyExtended   KeyCode = 224 // Prefix of a two-code arrow sequence
	KeyExtendedNU KeyCode = 0   // Alternate prefix (numpad arrows)
	KeyArrowLeft  KeyCode = 75  // Second code after an extended prefix
	KeyArrowRight KeyCode = 77
)

// Action represents a semantic game action, abstracted from physical key codes.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // a, A, left arrow
	ActionRight        // d, D, right arrow
	ActionFire         // Space
	ActionQuit         // q, Q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource reports pending key codes without blocking.
// Poll returns false when nothing is pending.
type InputSource interface {
	Poll() (KeyCode, bool)
}

// ReadAction consumes at most one key code from src and translates it.
// An extended prefix consumes one more code to resolve the arrow key;
// unknown codes, and a prefix with nothing after it, yield ActionNone.
func ReadAction(src InputSource) Action {
	code, ok := src.Poll()
	if !ok {
		return ActionNone
	}

	switch code {
	case KeyLeft, KeyLeftAlt:
		return ActionLeft
	case KeyRight, KeyRightAlt:
		return ActionRight
	case KeyFire:
		return ActionFire
	case KeyQuit, KeyQuitAlt:
		return ActionQuit
	case KeyExtended, KeyExtendedNU:
		next, ok := src.Poll()
		if !ok {
			return ActionNone
		}
		switch next {
		case KeyArrowLeft:
			return ActionLeft
		case KeyArrowRight:
			return ActionRight
		}
	}
	return ActionNone
}

// DefaultKeyQueueSize bounds how many codes can wait between ticks.
const DefaultKeyQueueSize = 16

// KeyQueue is a bounded FIFO of key codes implementing InputSource.
// The platform pushes codes as keys arrive; the game polls one per tick.
// Codes pushed while the queue is full are dropped.
// KeyQueue is not safe for concurrent use.
type KeyQueue struct {
	buf   []KeyCode
	head  int
	count int
}

// NewKeyQueue creates a queue holding up to size codes.
func NewKeyQueue(size int) *KeyQueue {
	if size <= 0 {
		size = DefaultKeyQueueSize
	}
	return &KeyQueue{buf: make([]KeyCode, size)}
}

// Push appends codes in order. A multi-code sequence is pushed whole or
// not at all so an extended prefix is never separated from its second code.
func (q *KeyQueue) Push(codes ...KeyCode) bool {
	if len(codes) > len(q.buf)-q.count {
		return false
	}
	for _, c := range codes {
		q.buf[(q.head+q.count)%len(q.buf)] = c
		q.count++
	}
	return true
}

// Poll removes and returns the oldest code.
func (q *KeyQueue) Poll() (KeyCode, bool) {
	if q.count == 0 {
		return 0, false
	}
	c := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return c, true
}

// Len returns the number of pending codes.
func (q *KeyQueue) Len() int {
	return q.count
}

// Reset drops all pending codes.
func (q *KeyQueue) Reset() {
	q.head = 0
	q.count = 0
}
