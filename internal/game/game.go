package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/satindergrewal/termmusic/internal/clue"
)

// Drawer hands out clues. *clue.Pool implements it.
type Drawer interface {
	Clue() (clue.Clue, error)
}

// Config holds game parameters.
type Config struct {
	Questions int
	Pause     time.Duration // between showing a clue and asking for the answer
}

// Score is the result of a game.
type Score struct {
	Correct int
	Asked   int
	Total   int // questions planned; Asked is lower if input ended early
}

// Game runs a fixed number of flashcard questions.
type Game struct {
	pool Drawer
	env  clue.Env
	cfg  Config

	sleep func(context.Context, time.Duration) error
}

// New creates a game. Clue output and prompts go to env.Out.
func New(pool Drawer, env clue.Env, cfg Config) *Game {
	return &Game{pool: pool, env: env, cfg: cfg, sleep: sleepCtx}
}

// Play asks every question, reading one answer per line from in. It stops
// early, without error, when in runs out.
func (g *Game) Play(ctx context.Context, in io.Reader) (Score, error) {
	out := g.env.Out
	score := Score{Total: g.cfg.Questions}
	lines := bufio.NewScanner(in)

	fmt.Fprint(out, "\n***Welcome to the Terminal Music Theory Game!***\n\n")

	for i := 0; i < g.cfg.Questions; i++ {
		if err := ctx.Err(); err != nil {
			return score, err
		}

		fmt.Fprintf(out, "\n\nClue %d\n", i)
		c, err := g.pool.Clue()
		if err != nil {
			return score, fmt.Errorf("draw clue: %w", err)
		}
		if err := c.Display(ctx, g.env); err != nil {
			if !errors.Is(err, clue.ErrPlayback) {
				return score, fmt.Errorf("display clue: %w", err)
			}
			log.Printf("Warning: %v", err)
			fmt.Fprintln(out, "(could not play audio)")
		}

		if err := g.sleep(ctx, g.cfg.Pause); err != nil {
			return score, err
		}

		fmt.Fprintf(out, "What is the %s?\t", strings.ToLower(c.Type()))
		if !lines.Scan() {
			if err := lines.Err(); err != nil {
				return score, fmt.Errorf("read answer: %w", err)
			}
			fmt.Fprintln(out)
			break
		}
		answer := strings.TrimSuffix(lines.Text(), "\r")

		score.Asked++
		if c.IsCorrect(answer) {
			score.Correct++
			fmt.Fprintln(out, "Great Job!")
		} else {
			fmt.Fprintf(out, "Wrong, sorry. Answer: %s\n", c.Answer())
		}
	}

	fmt.Fprintf(out, "\n\nFinal Score: %d out of %d\n", score.Correct, score.Total)
	return score, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
