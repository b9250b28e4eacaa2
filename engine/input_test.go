package engine_test

import (
	"sync"
	"testing"

	"github.com/plus3/handtris/engine"
	"github.com/plus3/handtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputQueue(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		q := engine.NewInputQueue()
		q.Push(tetris.MoveLeft)
		assert.True(t, q.PushToken("hard_drop"))
		assert.False(t, q.PushToken("wave"))
		q.Push(tetris.Reset)

		assert.Equal(t, 3, q.Len())
		assert.Equal(t, []tetris.Event{tetris.MoveLeft, tetris.HardDrop, tetris.Reset}, q.Drain())
		assert.Equal(t, 0, q.Len())
		assert.Empty(t, q.Drain())
	})

	t.Run("concurrent producers", func(t *testing.T) {
		q := engine.NewInputQueue()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					q.Push(tetris.MoveRight)
				}
			}()
		}
		wg.Wait()

		assert.Len(t, q.Drain(), 800)
	})
}

func TestInputSystem(t *testing.T) {
	t.Run("one gameplay event per frame", func(t *testing.T) {
		game := newGame(t)
		q := engine.NewInputQueue()
		input := engine.NewInputSystem(q, 1)
		scheduler := engine.NewScheduler(game)
		scheduler.Register(input)

		q.Push(tetris.MoveLeft)
		q.Push(tetris.MoveLeft)
		q.Push(tetris.MoveLeft)
		scheduler.Once(0)

		assert.Equal(t, 2, game.Current().Col)
		assert.Equal(t, int64(1), input.Stats.Applied)
		assert.Equal(t, int64(2), input.Stats.Dropped)
	})

	t.Run("control events are never dropped", func(t *testing.T) {
		game := newGame(t)
		q := engine.NewInputQueue()
		input := engine.NewInputSystem(q, 1)
		scheduler := engine.NewScheduler(game)
		scheduler.Register(input)

		q.Push(tetris.MoveRight)
		q.Push(tetris.SoftDrop)
		q.Push(tetris.TogglePause)
		scheduler.Once(0)

		assert.Equal(t, tetris.Paused, game.State())
		assert.Equal(t, 4, game.Current().Col)
		assert.Equal(t, 0, game.Current().Row)
	})

	t.Run("unlimited", func(t *testing.T) {
		game := newGame(t)
		q := engine.NewInputQueue()
		input := engine.NewInputSystem(q, 0)
		scheduler := engine.NewScheduler(game)
		scheduler.Register(input)

		q.Push(tetris.MoveLeft)
		q.Push(tetris.MoveLeft)
		q.Push(tetris.SoftDrop)
		scheduler.Once(0)

		assert.Equal(t, 1, game.Current().Col)
		assert.Equal(t, 1, game.Current().Row)
		assert.Equal(t, int64(3), input.Stats.Applied)
	})

	t.Run("rejected events are counted", func(t *testing.T) {
		game := newGame(t)
		q := engine.NewInputQueue()
		input := engine.NewInputSystem(q, 0)
		scheduler := engine.NewScheduler(game)
		scheduler.Register(input)

		q.Push(tetris.TogglePause)
		q.Push(tetris.MoveLeft)
		scheduler.Once(0)

		assert.Equal(t, int64(1), input.Stats.Applied)
		assert.Equal(t, int64(1), input.Stats.Rejected)
	})

	t.Run("reset starts a new session", func(t *testing.T) {
		game := newGame(t)
		q := engine.NewInputQueue()
		scheduler := engine.NewScheduler(game)
		scheduler.Register(engine.NewInputSystem(q, 1))

		before := scheduler.Session().ID
		q.Push(tetris.HardDrop)
		scheduler.Once(0)
		require.NotZero(t, game.Score())
		assert.Equal(t, before, scheduler.Session().ID)

		q.Push(tetris.Reset)
		scheduler.Once(0)
		assert.NotEqual(t, before, scheduler.Session().ID)
		assert.Equal(t, 0, game.Score())
		assert.Equal(t, int64(1), scheduler.Session().Frames)
	})
}
