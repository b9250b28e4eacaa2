// Command tetris-replay runs a scripted game without a window and prints a
// report of the outcome.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/handtris/engine"
	"github.com/plus3/handtris/internal/config"
	applog "github.com/plus3/handtris/internal/log"
	"github.com/plus3/handtris/tetris"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configFile string
	seed       uint64
	pieces     string
	dt         time.Duration
	maxPerTick int
	logLevel   string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "tetris-replay [script]",
		Short:        "Replay an input script and report the result",
		Long:         "Reads a script of events, one frame per line, from a file or stdin (\"-\" or no argument).",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}

			var in io.Reader = cmd.InOrStdin()
			if name != "-" {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-per-frame") {
				opts.maxPerTick = cfg.Input.MaxGameplayPerFrame
			}
			if !cmd.Flags().Changed("log-level") {
				opts.logLevel = cfg.Log.Level
			}

			frames, err := ParseScript(in)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			logger := applog.NewWithWriter(cmd.ErrOrStderr(), applog.Options{
				Prefix: "replay",
				Level:  opts.logLevel,
			})

			report, err := Replay(cfg.Game(), opts, frames, logger)
			if err != nil {
				return err
			}
			report.Script = name
			return report.Generate(out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (yaml, toml or json)")
	flags.Uint64Var(&opts.seed, "seed", 1, "random piece generator seed")
	flags.StringVar(&opts.pieces, "pieces", "", "fixed cyclic piece sequence, e.g. IOTSZJL (overrides --seed)")
	flags.DurationVar(&opts.dt, "dt", time.Second/60, "simulated time per frame")
	flags.IntVar(&opts.maxPerTick, "max-per-frame", 1, "gameplay events applied per frame (0 = unlimited)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	return cmd
}

// Replay runs frames against a fresh game and collects the report.
func Replay(gameCfg tetris.Config, opts options, frames []Frame, logger *log.Logger) (*Report, error) {
	var source tetris.PieceSource = tetris.NewRandomSource(opts.seed)
	if opts.pieces != "" {
		kinds, err := ParseKinds(opts.pieces)
		if err != nil {
			return nil, err
		}
		if len(kinds) == 0 {
			return nil, fmt.Errorf("empty piece sequence")
		}
		source = tetris.NewSequenceSource(kinds...)
	}

	game, err := tetris.New(gameCfg, source)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	queue := engine.NewInputQueue()
	input := engine.NewInputSystem(queue, opts.maxPerTick)

	scheduler := engine.NewScheduler(game)
	scheduler.Register(input)
	scheduler.Register(&engine.GravitySystem{})
	scheduler.Register(engine.NewMonitorSystem(logger))

	logger.Debug("replaying", "frames", len(frames), "seed", opts.seed, "pieces", opts.pieces)

	start := time.Now()
	dt := opts.dt.Seconds()
	for _, frame := range frames {
		for _, e := range frame {
			queue.Push(e)
		}
		scheduler.Once(dt)
	}

	report := &Report{
		Seed:      opts.seed,
		Pieces:    opts.pieces,
		Frames:    len(frames),
		DT:        opts.dt,
		Session:   scheduler.Session().ID.String(),
		Snapshot:  game.Snapshot(),
		Input:     input.Stats,
		Scheduler: scheduler.GetStats(),
		Elapsed:   time.Since(start),
	}
	for _, k := range tetris.Kinds() {
		report.Spawned = append(report.Spawned, KindCount{Kind: k, Count: game.Stats().Spawned(k)})
	}
	for i := range report.Clears {
		report.Clears[i] = game.Stats().Clears(i + 1)
	}
	return report, nil
}
