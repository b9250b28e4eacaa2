package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/handtris/engine"
	"github.com/plus3/handtris/tetris"
)

type binding struct {
	key    ebiten.Key
	event  tetris.Event
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, tetris.MoveLeft, true},
	{ebiten.KeyArrowRight, tetris.MoveRight, true},
	{ebiten.KeyArrowDown, tetris.SoftDrop, true},
	{ebiten.KeyArrowUp, tetris.RotateCW, true},
	{ebiten.KeyZ, tetris.RotateCCW, true},
	{ebiten.KeySpace, tetris.HardDrop, false},
	{ebiten.KeyP, tetris.TogglePause, false},
	{ebiten.KeyR, tetris.Reset, false},
}

// Keyboard turns key presses into events on the input queue. Held keys
// repeat after a delay.
type Keyboard struct {
	queue       *engine.InputQueue
	delayTicks  int
	repeatTicks int
}

func NewKeyboard(queue *engine.InputQueue, delay, rate time.Duration) *Keyboard {
	k := &Keyboard{queue: queue}
	k.SetRepeat(delay, rate)
	return k
}

// SetRepeat changes the key repeat timing.
func (k *Keyboard) SetRepeat(delay, rate time.Duration) {
	k.delayTicks = toTicks(delay, ebiten.TPS())
	k.repeatTicks = toTicks(rate, ebiten.TPS())
}

// Poll queues the events of every key that fires this tick.
func (k *Keyboard) Poll() {
	for _, b := range bindings {
		ticks := inpututil.KeyPressDuration(b.key)
		if b.repeat && fires(ticks, k.delayTicks, k.repeatTicks) || !b.repeat && ticks == 1 {
			k.queue.Push(b.event)
		}
	}
}

func (k *Keyboard) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// fires reports whether a key held for ticks ticks produces an event: once on
// the first tick, then every repeat ticks once the delay has passed.
func fires(ticks, delay, repeat int) bool {
	if ticks <= 0 {
		return false
	}
	if ticks == 1 {
		return true
	}
	held := ticks - 1
	if held < delay {
		return false
	}
	return (held-delay)%repeat == 0
}

func toTicks(d time.Duration, tps int) int {
	ticks := int(d * time.Duration(tps) / time.Second)
	if ticks < 1 {
		return 1
	}
	return ticks
}
