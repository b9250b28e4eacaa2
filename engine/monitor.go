package engine

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/plus3/handtris/tetris"
)

// MonitorSystem logs play-state transitions, line clears and level changes.
// Register it last so it observes the result of the whole frame.
type MonitorSystem struct {
	Logger *log.Logger

	session uuid.UUID
	state   tetris.State
	level   int
	lines   int
}

func NewMonitorSystem(logger *log.Logger) *MonitorSystem {
	return &MonitorSystem{Logger: logger}
}

func (s *MonitorSystem) Execute(frame *UpdateFrame) {
	game := frame.Game
	logger := s.Logger.With("session", frame.Session.ID.String())

	if frame.Session.ID != s.session {
		s.session = frame.Session.ID
		s.state = game.State()
		s.level = game.Level()
		s.lines = game.Lines()
		logger.Info("session started", "next", game.Next().Kind.String())
		return
	}

	if lines := game.Lines(); lines > s.lines {
		logger.Debug("lines cleared", "rows", lines-s.lines, "total", lines, "score", game.Score())
		s.lines = lines
	}

	if level := game.Level(); level != s.level {
		logger.Info("level up", "level", level)
		s.level = level
	}

	if state := game.State(); state != s.state {
		switch state {
		case tetris.Paused:
			logger.Info("paused")
		case tetris.Playing:
			logger.Info("resumed")
		case tetris.GameOver:
			logger.Info("game over",
				"score", game.Score(),
				"level", game.Level(),
				"lines", game.Lines(),
				"pieces", game.Stats().Pieces(),
				"frames", frame.Session.Frames,
			)
		}
		s.state = state
	}
}
