package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/satindergrewal/termmusic/internal/theory"
)

const (
	// StaveRows is the height of a blank stave: five lines and four spaces.
	StaveRows = 9

	// StaveWidth is the default stave width. It must be even so the note
	// head lands in the middle.
	StaveWidth = 20

	// StemLength is the number of rows the stem rises above the head.
	StemLength = 3
)

var (
	// ErrUnknownNote is returned for a note name the clef cannot draw.
	ErrUnknownNote = errors.New("unknown note for clef")

	// ErrClefTooTall means the clef art does not fit beside the note grid.
	ErrClefTooTall = errors.New("clef art taller than note grid")
)

// BlankStave returns the rows of an empty stave of the given width.
func BlankStave(width int) []string {
	line := strings.Repeat("-", width)
	space := strings.Repeat(" ", width)
	rows := make([]string, StaveRows)
	for i := range rows {
		if i%2 == 0 {
			rows[i] = line
		} else {
			rows[i] = space
		}
	}
	return rows
}

// NoteHead returns the glyph drawn for a note: the accidental, if any,
// followed by the head.
func NoteHead(n theory.Note) string {
	return n.Accidental.Symbol() + "0"
}

// NoteRows draws the note on a blank stave of StaveWidth columns. High notes
// get blank rows added on top until the stem fits.
func NoteRows(clef Clef, name string) ([]string, error) {
	row, ok := clef.Row(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s clef has no %q", ErrUnknownNote, clef.Name, name)
	}
	n, err := theory.ParseNote(name)
	if err != nil {
		return nil, fmt.Errorf("%s clef: %w", clef.Name, err)
	}

	rows := BlankStave(StaveWidth)
	for row-StemLength < 0 {
		rows = append([]string{strings.Repeat(" ", StaveWidth)}, rows...)
		row++
	}

	head := NoteHead(n)
	x := StaveWidth / 2
	rows[row] = overwrite(rows[row], x, head)
	for i := 1; i <= StemLength; i++ {
		rows[row-i] = overwrite(rows[row-i], x+len(head), "|")
	}
	return rows, nil
}

// overwrite replaces the characters of s starting at col with glyph,
// keeping the length of s.
func overwrite(s string, col int, glyph string) string {
	return s[:col] + glyph + s[col+len(glyph):]
}

// Compose places the clef art to the left of the note rows, padding the art
// with blank rows on top so the two grids share a bottom line.
func Compose(art, note []string) ([]string, error) {
	diff := len(note) - len(art)
	if diff < 0 {
		return nil, fmt.Errorf("%w: clef %d rows, note %d rows", ErrClefTooTall, len(art), len(note))
	}
	width := 0
	if len(art) > 0 {
		width = len(art[0])
	}

	out := make([]string, len(note))
	for i := range note {
		left := strings.Repeat(" ", width)
		if i >= diff {
			left = art[i-diff]
		}
		out[i] = left + note[i]
	}
	return out, nil
}

// Draw renders the note with its clef as a multi-line string.
func Draw(clef Clef, name string) (string, error) {
	note, err := NoteRows(clef, name)
	if err != nil {
		return "", err
	}
	rows, err := Compose(clef.Art, note)
	if err != nil {
		return "", err
	}
	return strings.Join(rows, "\n"), nil
}
