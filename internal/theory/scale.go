package theory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	// StepsPerOctave is the number of equal-tempered semitones in an octave.
	StepsPerOctave = 12

	// ConcertA is the reference pitch of A4 in Hz.
	ConcertA = 440.0
)

// ErrOutOfRange is returned when a note or shift falls outside a scale.
var ErrOutOfRange = errors.New("note outside scale")

var sharpNames = [StepsPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Scale is a chromatic run of notes spanning a whole number of octaves,
// tuned in equal temperament between a lower and an upper reference pitch.
type Scale struct {
	names []string
	index map[string]int
	base  float64 // frequency of the first note
	upper float64 // frequency of the last note
	steps int     // semitones between first and last note
}

// NewScale builds a chromatic scale starting at root with the given base
// frequency. The scale holds StepsPerOctave*octaves+1 notes so that both
// reference pitches are included. Names use sharp spellings.
func NewScale(root string, base float64, octaves int) (*Scale, error) {
	if octaves < 1 {
		return nil, fmt.Errorf("scale needs at least one octave, got %d", octaves)
	}
	if base <= 0 {
		return nil, fmt.Errorf("scale base frequency must be positive, got %v", base)
	}
	n, err := ParseNote(root)
	if err != nil {
		return nil, fmt.Errorf("scale root: %w", err)
	}

	steps := StepsPerOctave * octaves
	s := &Scale{
		names: make([]string, 0, steps+1),
		index: make(map[string]int, steps+1),
		base:  base,
		upper: base * math.Pow(2, float64(octaves)),
		steps: steps,
	}
	start := n.MIDI()
	for i := 0; i <= steps; i++ {
		key := start + i
		name := sharpNames[key%StepsPerOctave] + strconv.Itoa(key/StepsPerOctave-1)
		s.index[name] = i
		s.names = append(s.names, name)
	}
	// keep the root findable under the spelling it was given
	s.index[root] = 0
	return s, nil
}

// DefaultScale is A4 to A6 at concert pitch, wide enough for every interval
// above an A4 root.
func DefaultScale() *Scale {
	s, err := NewScale("A4", ConcertA, 2)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of notes in the scale.
func (s *Scale) Len() int { return len(s.names) }

// Names returns the note names in ascending order.
func (s *Scale) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Root returns the name of the first note.
func (s *Scale) Root() string { return s.names[0] }

// Index returns the chromatic position of name within the scale.
func (s *Scale) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Frequency returns the frequency of the i-th note, interpolating
// logarithmically between the lower and upper reference pitches.
func (s *Scale) Frequency(i int) float64 {
	return s.base * math.Pow(2, float64(i)/float64(s.steps)*math.Log2(s.upper/s.base))
}

// Shift returns the frequency of the note semitones above name.
func (s *Scale) Shift(name string, semitones int) (float64, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrOutOfRange, name)
	}
	j := i + semitones
	if j < 0 || j >= len(s.names) {
		return 0, fmt.Errorf("%w: %q shifted by %d", ErrOutOfRange, name, semitones)
	}
	return s.Frequency(j), nil
}
