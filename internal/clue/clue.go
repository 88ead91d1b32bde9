// Package clue defines the flashcard clues and the pool they are drawn from.
//
// A clue is built from one version name, shows itself once, and then checks
// answers. Note clues draw a note on a clef; interval clues play two tones.
package clue

import (
	"context"
	"errors"
	"io"

	"github.com/satindergrewal/termmusic/internal/audio"
)

// ErrPlayback wraps audio sink failures. The clue was shown as far as it
// could be and the question can still be answered.
var ErrPlayback = errors.New("playback failed")

// Env is where a clue displays itself.
type Env struct {
	Out  io.Writer
	Sink audio.Sink
}

// Clue is one flashcard question.
type Clue interface {
	// Display shows or plays the clue.
	Display(ctx context.Context, env Env) error
	// Answer returns the canonical answer followed by any accepted
	// alternatives, for showing after a wrong guess.
	Answer() string
	// IsCorrect compares an answer exactly, without trimming or case folding.
	IsCorrect(answer string) bool
	// Type is the category shown in the prompt, "Note" or "Interval".
	Type() string
	// Version is the name the clue was built from.
	Version() string
}

// Kind groups variants for category filtering.
type Kind string

const (
	KindNote     Kind = "note"
	KindInterval Kind = "interval"
)

// Variant is a constructor for one family of clues together with the
// finite set of versions it accepts.
type Variant struct {
	Name     string
	Kind     Kind
	Versions func() []string
	New      func(version string) (Clue, error)
}
