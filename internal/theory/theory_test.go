package theory

import (
	"errors"
	"math"
	"testing"
)

// --- ParseNote ---

func TestParseNote(t *testing.T) {
	tests := []struct {
		name string
		want Note
	}{
		{"A4", Note{Letter: 'A', Accidental: Natural, Octave: 4}},
		{"F#5", Note{Letter: 'F', Accidental: Sharp, Octave: 5}},
		{"Bb2", Note{Letter: 'B', Accidental: Flat, Octave: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNote(tt.name)
			if err != nil {
				t.Fatalf("ParseNote(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseNote(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
			if got.String() != tt.name {
				t.Errorf("String() = %q, want %q", got.String(), tt.name)
			}
		})
	}
}

func TestParseNoteInvalid(t *testing.T) {
	for _, name := range []string{"", "a4", "H4", "A", "A#", "Ax4", "A44", "blahblahblah"} {
		if _, err := ParseNote(name); !errors.Is(err, ErrInvalidNoteName) {
			t.Errorf("ParseNote(%q) error = %v, want ErrInvalidNoteName", name, err)
		}
	}
}

func TestNoteMIDI(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"C4", 60},
		{"A4", 69},
		{"A#4", 70},
		{"Bb4", 70},
		{"B#4", 72},
		{"Cb5", 71},
	}
	for _, tt := range tests {
		n, err := ParseNote(tt.name)
		if err != nil {
			t.Fatalf("ParseNote(%q): %v", tt.name, err)
		}
		if got := n.MIDI(); got != tt.want {
			t.Errorf("%s MIDI = %d, want %d", tt.name, got, tt.want)
		}
	}
}

// --- Scale ---

func TestDefaultScale(t *testing.T) {
	s := DefaultScale()
	if s.Len() != 25 {
		t.Fatalf("Len = %d, want 25", s.Len())
	}
	names := s.Names()
	if names[0] != "A4" || names[3] != "C5" || names[12] != "A5" || names[24] != "A6" {
		t.Errorf("unexpected names: %v", names)
	}
	if s.Root() != "A4" {
		t.Errorf("Root = %q, want A4", s.Root())
	}
}

func TestScaleMatchesEqualTemperament(t *testing.T) {
	s := DefaultScale()
	for i := 0; i < s.Len(); i++ {
		want := ConcertA * math.Pow(2, float64(i)/12)
		if diff := math.Abs(s.Frequency(i) - want); diff > 1e-9 {
			t.Errorf("Frequency(%d) = %v, want %v", i, s.Frequency(i), want)
		}
	}
}

func TestScaleMonotonic(t *testing.T) {
	s := DefaultScale()
	prev := s.Frequency(0)
	for i := 1; i < s.Len(); i++ {
		f := s.Frequency(i)
		if f <= prev {
			t.Errorf("Frequency(%d)=%v not above Frequency(%d)=%v", i, f, i-1, prev)
		}
		prev = f
	}
}

func TestScaleOneOctaveDoubles(t *testing.T) {
	s, err := NewScale("C4", 261.63, 1)
	if err != nil {
		t.Fatal(err)
	}
	first, last := s.Frequency(0), s.Frequency(s.Len()-1)
	if last != 2*first {
		t.Errorf("last = %v, want exactly %v", last, 2*first)
	}
}

func TestScaleShift(t *testing.T) {
	s := DefaultScale()
	f, err := s.Shift("A4", 12)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f-880) > 1e-9 {
		t.Errorf("A4+12 = %v, want 880", f)
	}
	if _, err := s.Shift("A4", 25); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Shift past top: err = %v, want ErrOutOfRange", err)
	}
	if _, err := s.Shift("C2", 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Shift unknown note: err = %v, want ErrOutOfRange", err)
	}
}

func TestNewScaleInvalid(t *testing.T) {
	if _, err := NewScale("A4", ConcertA, 0); err == nil {
		t.Error("zero octaves should fail")
	}
	if _, err := NewScale("A4", 0, 1); err == nil {
		t.Error("zero base should fail")
	}
	if _, err := NewScale("a4", ConcertA, 1); !errors.Is(err, ErrInvalidNoteName) {
		t.Errorf("bad root: err = %v, want ErrInvalidNoteName", err)
	}
}

// --- Intervals ---

func TestIntervalTable(t *testing.T) {
	all := Intervals()
	if len(all) != 15 {
		t.Fatalf("got %d intervals, want 15", len(all))
	}
	seen := map[string]bool{}
	for i, iv := range all {
		if iv.Semitones != i {
			t.Errorf("%s has %d semitones, want %d", iv.Label, iv.Semitones, i)
		}
		for _, s := range append([]string{iv.Label}, iv.Aliases...) {
			if seen[s] {
				t.Errorf("spelling %q used twice", s)
			}
			seen[s] = true
		}
	}
}

func TestTritoneSpellings(t *testing.T) {
	iv, ok := LookupInterval("dim5")
	if !ok {
		t.Fatal("dim5 missing")
	}
	for _, s := range []string{"dim5", "aug4", "#4", "b5", "tritone"} {
		if !iv.Accepts(s) {
			t.Errorf("dim5 should accept %q", s)
		}
	}
	for _, s := range []string{"", "Dim5", "5", "tri tone", " dim5"} {
		if iv.Accepts(s) {
			t.Errorf("dim5 should reject %q", s)
		}
	}
	if got := iv.String(); got != "dim5 (aug4, #4, b5, tritone)" {
		t.Errorf("String = %q", got)
	}
}

func TestLookupIntervalUnknown(t *testing.T) {
	if _, ok := LookupInterval("min10"); ok {
		t.Error("min10 should not exist")
	}
}
