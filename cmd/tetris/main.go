// Command tetris plays the falling-block puzzle in a window.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/handtris/engine"
	"github.com/plus3/handtris/engine/debugui"
	debugui_ebiten "github.com/plus3/handtris/engine/debugui/ebiten"
	"github.com/plus3/handtris/internal/config"
	applog "github.com/plus3/handtris/internal/log"
	"github.com/plus3/handtris/tetris"
	"github.com/spf13/cobra"
)

const (
	ScreenWidth  = 650
	ScreenHeight = 700
	DebugWidth   = 980
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		debug      bool
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:          "tetris",
		Short:        "Play the falling-block puzzle",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			return run(cfg, configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json)")
	cmd.Flags().BoolVar(&debug, "debug", false, "show the imgui debug panels")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "piece generator seed (0 picks one from the clock)")
	return cmd
}

func run(cfg *config.Config, configFile string) error {
	logger := applog.New(applog.Options{
		Prefix: "tetris",
		Level:  cfg.Log.Level,
		Path:   cfg.Log.Path,
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	game, err := tetris.New(cfg.Game(), tetris.NewRandomSource(seed))
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	queue := engine.NewInputQueue()
	input := engine.NewInputSystem(queue, cfg.Input.MaxGameplayPerFrame)

	scheduler := engine.NewScheduler(game)
	scheduler.Register(input)
	scheduler.Register(&engine.GravitySystem{})
	scheduler.Register(engine.NewMonitorSystem(logger))

	app := &App{
		scheduler: scheduler,
		input:     input,
		keyboard:  NewKeyboard(queue, cfg.Input.RepeatDelay, cfg.Input.RepeatRate),
		renderer:  NewRenderer(),
		logger:    logger,
		reloads:   make(chan *config.Config, 1),
	}

	width := ScreenWidth
	if cfg.Debug {
		app.imgui = debugui_ebiten.NewImguiBackend("Tetris", DebugWidth, ScreenHeight)
		ui := debugui.NewImguiSystem()
		debugui.Install(ui, scheduler, input)
		scheduler.Register(ui)
		app.imguiInput = ui.InputState
		width = DebugWidth
	}

	if configFile != "" {
		err := config.Watch(configFile, app.queueReload, func(err error) {
			logger.Warn("config reload failed", "err", err)
		})
		if err != nil {
			logger.Warn("config watch disabled", "err", err)
		}
	}

	ebiten.SetWindowSize(width, ScreenHeight)
	ebiten.SetWindowTitle("Tetris")

	logger.Info("starting", "seed", seed, "width", cfg.Board.Width, "height", cfg.Board.Height, "debug", cfg.Debug)
	if err := ebiten.RunGame(app); err != nil {
		return err
	}
	logger.Info("bye", "score", game.Score(), "lines", game.Lines())
	return nil
}

// App implements ebiten.Game.
type App struct {
	scheduler  *engine.Scheduler
	input      *engine.InputSystem
	keyboard   *Keyboard
	renderer   *Renderer
	logger     *log.Logger
	reloads    chan *config.Config
	imgui      *debugui_ebiten.ImguiBackend
	imguiInput *debugui.ImguiInputState
}

// queueReload runs on the config watcher goroutine. Only the latest pending
// reload is kept.
func (a *App) queueReload(cfg *config.Config) {
	select {
	case <-a.reloads:
	default:
	}
	a.reloads <- cfg
}

func (a *App) applyReload() {
	select {
	case cfg := <-a.reloads:
		game := a.scheduler.Game()
		game.SetFallInterval(cfg.Gravity.FallInterval)
		game.SetCatchUp(cfg.Gravity.CatchUp)
		a.input.MaxGameplayPerFrame = cfg.Input.MaxGameplayPerFrame
		a.keyboard.SetRepeat(cfg.Input.RepeatDelay, cfg.Input.RepeatRate)
		if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
			a.logger.SetLevel(level)
		}
		a.logger.Info("config reloaded", "fallInterval", cfg.Gravity.FallInterval, "catchUp", cfg.Gravity.CatchUp)
	default:
	}
}

func (a *App) Update() error {
	if a.keyboard.Quit() {
		return ebiten.Termination
	}

	a.applyReload()

	if a.imguiInput == nil || !a.imguiInput.WantCaptureKeyboard {
		a.keyboard.Poll()
	}

	dt := 1.0 / float64(ebiten.TPS())
	if a.imgui != nil {
		a.imgui.Frame(func() { a.scheduler.Once(dt) })
		return nil
	}
	a.scheduler.Once(dt)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.scheduler.Game().Snapshot())
	if a.imgui != nil {
		a.imgui.Overlay(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
