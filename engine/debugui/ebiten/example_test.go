package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/handtris/engine"
	"github.com/plus3/handtris/engine/debugui"
	debugui_ebiten "github.com/plus3/handtris/engine/debugui/ebiten"
	"github.com/plus3/handtris/tetris"
)

// Game implements ebiten.Game and draws the debug panels over the board.
type Game struct {
	scheduler    *engine.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.imguiBackend.Frame(func() {
		g.scheduler.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board
	// ...

	g.imguiBackend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Tetris Debug", 1280, 720)

	game, err := tetris.New(tetris.DefaultConfig(), nil)
	if err != nil {
		panic(err)
	}

	queue := engine.NewInputQueue()
	input := engine.NewInputSystem(queue, 1)

	scheduler := engine.NewScheduler(game)
	scheduler.Register(input)
	scheduler.Register(&engine.GravitySystem{})

	ui := debugui.NewImguiSystem()
	debugui.Install(ui, scheduler, input)
	ui.Add(func(frame *engine.UpdateFrame) {
		imgui.Begin("Hello")
		imgui.Text("Hello from the scheduler!")
		imgui.End()
	})
	scheduler.Register(ui)

	if err := ebiten.RunGame(&Game{scheduler: scheduler, imguiBackend: backend}); err != nil {
		panic(err)
	}
}
