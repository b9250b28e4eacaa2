package engine

import (
	"sync"

	"github.com/plus3/handtris/tetris"
)

// InputQueue serializes events from any number of producers into one ordered
// stream consumed by the game loop.
type InputQueue struct {
	mu     sync.Mutex
	events []tetris.Event
}

func NewInputQueue() *InputQueue {
	return &InputQueue{}
}

// Push appends an event. It is safe to call from any goroutine.
func (q *InputQueue) Push(e tetris.Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// PushToken parses a textual token and queues it. Unknown tokens are ignored
// and reported as false.
func (q *InputQueue) PushToken(token string) bool {
	e, ok := tetris.ParseEvent(token)
	if ok {
		q.Push(e)
	}
	return ok
}

// Drain removes and returns every queued event in arrival order.
func (q *InputQueue) Drain() []tetris.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil
	return events
}

func (q *InputQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// InputStats counts how the events of a session were handled.
type InputStats struct {
	Applied  int64
	Rejected int64
	Dropped  int64
}

// InputSystem applies queued events to the game. TogglePause and Reset are
// always applied; gameplay events beyond MaxGameplayPerFrame in one frame are
// dropped. A MaxGameplayPerFrame of zero or less applies every event.
type InputSystem struct {
	Queue               *InputQueue
	MaxGameplayPerFrame int
	Stats               InputStats
}

func NewInputSystem(queue *InputQueue, maxGameplayPerFrame int) *InputSystem {
	return &InputSystem{
		Queue:               queue,
		MaxGameplayPerFrame: maxGameplayPerFrame,
	}
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	gameplay := 0
	for _, e := range s.Queue.Drain() {
		if e.Gameplay() {
			if s.MaxGameplayPerFrame > 0 && gameplay >= s.MaxGameplayPerFrame {
				s.Stats.Dropped++
				continue
			}
			gameplay++
		}

		if !frame.Game.Apply(e) {
			s.Stats.Rejected++
			continue
		}
		s.Stats.Applied++

		if e == tetris.Reset {
			frame.Session.Renew()
		}
	}
}
