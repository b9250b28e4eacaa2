package engine

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one play session. A new session begins whenever the
// game is reset.
type Session struct {
	ID      uuid.UUID
	Started time.Time
	Frames  int64
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.New(),
		Started: time.Now(),
	}
}

// Renew starts a new session in place.
func (s *Session) Renew() {
	s.ID = uuid.New()
	s.Started = time.Now()
	s.Frames = 0
}
