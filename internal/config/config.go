package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/satindergrewal/termmusic/internal/audio"
	"github.com/satindergrewal/termmusic/internal/clue"
)

// Sink names accepted by Config.Sink.
const (
	SinkPlayer  = "player"
	SinkSpeaker = "speaker"
	SinkNone    = "none"
)

// Config holds all runtime configuration. Environment variables set the
// defaults and command-line flags override them.
type Config struct {
	// Quiz
	Questions int    `env:"TERMMUSIC_QUESTIONS" envDefault:"10"`
	Category  string `env:"TERMMUSIC_CATEGORY"  envDefault:"all"`

	// Audio output
	Sink    string `env:"TERMMUSIC_SINK"   envDefault:"player"`
	Format  string `env:"TERMMUSIC_FORMAT" envDefault:"wav"`
	Player  string `env:"TERMMUSIC_PLAYER" envDefault:"ffplay -nodisp -autoexit -loglevel error"`
	TempDir string `env:"TERMMUSIC_TMPDIR"` // empty means os.TempDir

	// Pacing
	NoteDuration time.Duration `env:"TERMMUSIC_NOTE_DURATION" envDefault:"1s"`
	Pause        time.Duration `env:"TERMMUSIC_PAUSE"         envDefault:"500ms"`
}

// FromEnv reads configuration from environment variables with defaults.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BindFlags registers a flag for every field, defaulting to the current value.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Questions, "questions", "n", c.Questions, "number of questions")
	fs.StringVarP(&c.Category, "category", "c", c.Category, "clue category: note, interval or all")
	fs.StringVar(&c.Sink, "sink", c.Sink, "audio output: player, speaker or none")
	fs.StringVar(&c.Format, "format", c.Format, "audio file format for the player sink: wav, opus or raw")
	fs.StringVar(&c.Player, "player", c.Player, "command that plays an audio file (path is appended)")
	fs.StringVar(&c.TempDir, "tmpdir", c.TempDir, "directory for temporary audio files")
	fs.DurationVar(&c.NoteDuration, "note-duration", c.NoteDuration, "length of each interval note")
	fs.DurationVar(&c.Pause, "pause", c.Pause, "pause between showing a clue and asking")
}

// Load reads the environment, then parses args on top of it.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the env and flag parsers cannot.
func (c Config) Validate() error {
	var errs []error
	if c.Questions <= 0 {
		errs = append(errs, fmt.Errorf("questions must be positive, got %d", c.Questions))
	}
	if _, err := clue.ParseCategory(c.Category); err != nil {
		errs = append(errs, err)
	}
	switch c.Sink {
	case SinkPlayer, SinkSpeaker, SinkNone:
	default:
		errs = append(errs, fmt.Errorf("unknown sink %q", c.Sink))
	}
	if _, err := audio.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.NoteDuration <= 0 {
		errs = append(errs, fmt.Errorf("note duration must be positive, got %v", c.NoteDuration))
	}
	if c.Pause < 0 {
		errs = append(errs, fmt.Errorf("pause must not be negative, got %v", c.Pause))
	}
	return errors.Join(errs...)
}
