package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/satindergrewal/termmusic/internal/audio"
	"github.com/satindergrewal/termmusic/internal/clue"
	"github.com/satindergrewal/termmusic/internal/config"
	"github.com/satindergrewal/termmusic/internal/game"
	"github.com/satindergrewal/termmusic/internal/theory"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	fs := pflag.NewFlagSet("termmusic", pflag.ExitOnError)
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	category, err := clue.ParseCategory(cfg.Category)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	settings := clue.IntervalSettings{Scale: theory.DefaultScale(), NoteDuration: cfg.NoteDuration}
	pool, err := clue.NewPool(category, clue.WithVariants(clue.Registry(settings)...))
	if err != nil {
		log.Fatalf("clue pool: %v", err)
	}

	sink, err := newSink(cfg)
	if err != nil {
		log.Fatalf("audio sink: %v", err)
	}

	g := game.New(pool, clue.Env{Out: os.Stdout, Sink: sink}, game.Config{
		Questions: cfg.Questions,
		Pause:     cfg.Pause,
	})
	if _, err := g.Play(ctx, os.Stdin); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Println("Interrupted")
			cancel()
			os.Exit(130)
		}
		log.Fatalf("game: %v", err)
	}
}

func newSink(cfg config.Config) (audio.Sink, error) {
	switch cfg.Sink {
	case config.SinkNone:
		return audio.Discard, nil
	case config.SinkSpeaker:
		return &audio.SpeakerSink{}, nil
	default:
		format, err := audio.ParseFormat(cfg.Format)
		if err != nil {
			return nil, err
		}
		return audio.NewFileSink(format, cfg.Player, cfg.TempDir)
	}
}
