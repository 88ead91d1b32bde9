package clue

import (
	"context"
	"fmt"

	"github.com/satindergrewal/termmusic/internal/notation"
)

// NoteClue asks for the name of a note drawn on a clef.
type NoteClue struct {
	clef notation.Clef
	name string
}

var _ Clue = (*NoteClue)(nil)

// NewNoteClue validates name against the clef's table.
func NewNoteClue(clef notation.Clef, name string) (*NoteClue, error) {
	if _, ok := clef.Row(name); !ok {
		return nil, fmt.Errorf("%w: %s clef has no %q", notation.ErrUnknownNote, clef.Name, name)
	}
	return &NoteClue{clef: clef, name: name}, nil
}

// NewTrebleClue builds a treble clef note clue.
func NewTrebleClue(name string) (*NoteClue, error) {
	return NewNoteClue(notation.Treble, name)
}

// NewBassClue builds a bass clef note clue.
func NewBassClue(name string) (*NoteClue, error) {
	return NewNoteClue(notation.Bass, name)
}

// Clef returns the clef the note is drawn on.
func (c *NoteClue) Clef() notation.Clef { return c.clef }

// Rows returns the note grid without the clef.
func (c *NoteClue) Rows() ([]string, error) {
	return notation.NoteRows(c.clef, c.name)
}

func (c *NoteClue) Display(_ context.Context, env Env) error {
	drawing, err := notation.Draw(c.clef, c.name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Out, drawing)
	return err
}

func (c *NoteClue) Answer() string { return c.name }

func (c *NoteClue) IsCorrect(answer string) bool { return answer == c.name }

func (c *NoteClue) Type() string { return "Note" }

func (c *NoteClue) Version() string { return c.name }

func noteVariant(name string, clef notation.Clef) Variant {
	return Variant{
		Name:     name,
		Kind:     KindNote,
		Versions: clef.Notes,
		New: func(version string) (Clue, error) {
			return NewNoteClue(clef, version)
		},
	}
}

// TrebleNotes and BassNotes are the note reading variants.
var (
	TrebleNotes = noteVariant("treble", notation.Treble)
	BassNotes   = noteVariant("bass", notation.Bass)
)
