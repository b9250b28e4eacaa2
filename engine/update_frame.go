package engine

import (
	"time"

	"github.com/plus3/handtris/tetris"
)

// UpdateFrame is passed to every system during one loop iteration.
type UpdateFrame struct {
	DeltaTime float64
	Game      *tetris.Game
	Session   *Session
	Commands  *Commands
}

func newUpdateFrame(dt float64, game *tetris.Game, session *Session) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Game:      game,
		Session:   session,
		Commands:  newCommands(),
	}
}

// Elapsed returns the frame's delta time as a Duration.
func (f *UpdateFrame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
