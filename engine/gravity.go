package engine

// GravitySystem advances the game's fall timer by the frame delta. It must be
// registered after InputSystem so that input is applied before the tick.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	frame.Game.Tick(frame.Elapsed())
}
