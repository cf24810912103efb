package game

// EventKind identifies a discrete happening the shell may react to with
// sound or a banner.
type EventKind uint8

const (
	EventJump EventKind = iota
	EventTransform
	EventCoin
	EventGameOver
	EventUnlock
)

func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventTransform:
		return "transform"
	case EventCoin:
		return "coin"
	case EventGameOver:
		return "gameover"
	case EventUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// Event is one entry in the event stream.
type Event struct {
	Kind  EventKind
	Form  string // form id for transform and unlock
	Value int    // coin value, or final score for gameover
}
