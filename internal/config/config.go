// Package config loads front-end settings from defaults, an optional config
// file, a .env file and TETRIS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/plus3/handtris/tetris"
	"github.com/spf13/viper"
)

const EnvPrefix = "TETRIS"

type Config struct {
	Board   BoardConf   `mapstructure:"board"`
	Gravity GravityConf `mapstructure:"gravity"`
	Input   InputConf   `mapstructure:"input"`
	Log     LogConf     `mapstructure:"log"`
	Seed    uint64      `mapstructure:"seed"`
	Debug   bool        `mapstructure:"debug"`
}

type BoardConf struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type GravityConf struct {
	FallInterval time.Duration `mapstructure:"fallInterval"`
	CatchUp      bool          `mapstructure:"catchUp"`
}

type InputConf struct {
	MaxGameplayPerFrame int           `mapstructure:"maxGameplayPerFrame"`
	RepeatDelay         time.Duration `mapstructure:"repeatDelay"`
	RepeatRate          time.Duration `mapstructure:"repeatRate"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Game converts the board and gravity settings to a tetris.Config.
func (c *Config) Game() tetris.Config {
	return tetris.Config{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		FallInterval: c.Gravity.FallInterval,
		CatchUp:      c.Gravity.CatchUp,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.width", tetris.DefaultWidth)
	v.SetDefault("board.height", tetris.DefaultHeight)
	v.SetDefault("gravity.fallInterval", tetris.DefaultFallInterval)
	v.SetDefault("gravity.catchUp", false)
	v.SetDefault("input.maxGameplayPerFrame", 1)
	v.SetDefault("input.repeatDelay", 150*time.Millisecond)
	v.SetDefault("input.repeatRate", 50*time.Millisecond)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("seed", 0)
	v.SetDefault("debug", false)
}

func newViper(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. An empty configFile uses defaults and the
// environment only. A missing .env file is not an error.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := newViper(configFile)
	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Game().Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch reloads configFile whenever it is written and passes the result to
// onChange. Reload errors are passed to onError. Both run on the watcher's
// goroutine; callers hand the value over to the game loop themselves.
func Watch(configFile string, onChange func(*Config), onError func(error)) error {
	v := newViper(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}
