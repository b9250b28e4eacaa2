package tetris

import "strings"

//go:generate stringer -type=Event

// Event is an abstract input token produced by an external collaborator
// (keyboard, gesture classifier, replay script).
type Event uint8

const (
	MoveLeft Event = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop
	TogglePause
	Reset
)

// EventCount is the number of defined events.
const EventCount = 8

// ParseEvent converts a token such as "MoveLeft" or "hard_drop" to an Event.
// Matching ignores case, '-' and '_'. Unknown tokens return false.
func ParseEvent(token string) (Event, bool) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.TrimSpace(token))
	for e := range Event(EventCount) {
		if strings.EqualFold(norm, e.String()) {
			return e, true
		}
	}
	return 0, false
}

// Gameplay reports whether the event moves the piece, as opposed to the
// control events TogglePause and Reset.
func (e Event) Gameplay() bool {
	return e < TogglePause
}

// Apply performs the controller operation mapped to e and reports whether it
// took effect. Events outside the defined set are ignored.
func (g *Game) Apply(e Event) bool {
	switch e {
	case MoveLeft:
		return g.Move(-1, 0)
	case MoveRight:
		return g.Move(1, 0)
	case RotateCW:
		return g.Rotate(CW)
	case RotateCCW:
		return g.Rotate(CCW)
	case SoftDrop:
		if g.state != Playing {
			return false
		}
		g.SoftDrop()
		return true
	case HardDrop:
		return g.HardDrop()
	case TogglePause:
		return g.TogglePause()
	case Reset:
		g.Reset()
		return true
	}
	return false
}
