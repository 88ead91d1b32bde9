package theory

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidNoteName is returned when a note name cannot be parsed.
var ErrInvalidNoteName = errors.New("invalid note name")

// Accidental is the alteration applied to a natural note.
type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

// Symbol returns the spelling of the accidental inside a note name.
func (a Accidental) Symbol() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	default:
		return ""
	}
}

// Note is a parsed note name such as "F#5".
type Note struct {
	Letter     byte
	Accidental Accidental
	Octave     int
}

// semitones above C for each natural letter
var letterOffsets = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseNote splits a note name into letter, accidental and octave.
// Letters must be upper case, as they are in the answers.
func ParseNote(name string) (Note, error) {
	if len(name) < 2 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	n := Note{Letter: name[0]}
	if _, ok := letterOffsets[n.Letter]; !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}

	rest := name[1:]
	switch rest[0] {
	case '#':
		n.Accidental = Sharp
		rest = rest[1:]
	case 'b':
		n.Accidental = Flat
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 || len(rest) != 1 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	n.Octave = octave
	return n, nil
}

// String returns the canonical spelling, e.g. "Bb4".
func (n Note) String() string {
	return string(n.Letter) + n.Accidental.Symbol() + strconv.Itoa(n.Octave)
}

// MIDI returns the MIDI key number of the note (C4 = 60).
// B#4 and Cb5 wrap across the octave the way they sound.
func (n Note) MIDI() int {
	key := (n.Octave+1)*12 + letterOffsets[n.Letter]
	switch n.Accidental {
	case Sharp:
		key++
	case Flat:
		key--
	}
	return key
}
