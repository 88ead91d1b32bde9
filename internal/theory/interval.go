package theory

import (
	"errors"
	"strings"
)

// ErrUnknownInterval is returned for a label missing from the interval table.
var ErrUnknownInterval = errors.New("unknown interval")

// Interval is a named distance above a root note.
type Interval struct {
	Label     string
	Semitones int
	// Aliases are other accepted answers for the same interval. They are
	// never used to pick the sound.
	Aliases []string
}

// intervals is ordered by size. Spellings are convention, not arithmetic,
// so they are listed by hand.
var intervals = []Interval{
	{Label: "uni", Semitones: 0, Aliases: []string{"unison", "P1"}},
	{Label: "min2", Semitones: 1, Aliases: []string{"b2", "m2"}},
	{Label: "maj2", Semitones: 2, Aliases: []string{"2", "M2"}},
	{Label: "min3", Semitones: 3, Aliases: []string{"b3", "m3", "aug2", "#2"}},
	{Label: "maj3", Semitones: 4, Aliases: []string{"3", "M3"}},
	{Label: "4", Semitones: 5, Aliases: []string{"P4", "per4"}},
	{Label: "dim5", Semitones: 6, Aliases: []string{"aug4", "#4", "b5", "tritone"}},
	{Label: "5", Semitones: 7, Aliases: []string{"P5", "per5"}},
	{Label: "min6", Semitones: 8, Aliases: []string{"b6", "m6", "aug5", "#5"}},
	{Label: "maj6", Semitones: 9, Aliases: []string{"6", "M6", "dim7"}},
	{Label: "min7", Semitones: 10, Aliases: []string{"b7", "m7"}},
	{Label: "maj7", Semitones: 11, Aliases: []string{"7", "M7"}},
	{Label: "oct", Semitones: 12, Aliases: []string{"8", "P8", "octave"}},
	{Label: "min9", Semitones: 13, Aliases: []string{"b9", "m9"}},
	{Label: "maj9", Semitones: 14, Aliases: []string{"9", "M9"}},
}

// Intervals returns every known interval, smallest first.
func Intervals() []Interval {
	out := make([]Interval, len(intervals))
	copy(out, intervals)
	return out
}

// LookupInterval finds an interval by its canonical label.
func LookupInterval(label string) (Interval, bool) {
	for _, iv := range intervals {
		if iv.Label == label {
			return iv, true
		}
	}
	return Interval{}, false
}

// Accepts reports whether answer names this interval. The comparison is
// exact and case-sensitive: "M3" and "m3" are different intervals.
func (iv Interval) Accepts(answer string) bool {
	if answer == iv.Label {
		return true
	}
	for _, a := range iv.Aliases {
		if answer == a {
			return true
		}
	}
	return false
}

// String returns the label followed by its aliases, e.g. "dim5 (aug4, #4, b5, tritone)".
func (iv Interval) String() string {
	if len(iv.Aliases) == 0 {
		return iv.Label
	}
	return iv.Label + " (" + strings.Join(iv.Aliases, ", ") + ")"
}
