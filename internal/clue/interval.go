package clue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/satindergrewal/termmusic/internal/audio"
	"github.com/satindergrewal/termmusic/internal/theory"
)

// IntervalSettings controls how interval clues sound.
type IntervalSettings struct {
	Scale        *theory.Scale // the root is the first note of the scale
	NoteDuration time.Duration
}

// DefaultIntervalSettings plays one second per note above A4.
func DefaultIntervalSettings() IntervalSettings {
	return IntervalSettings{Scale: theory.DefaultScale(), NoteDuration: time.Second}
}

// IntervalClue plays two notes and asks for the interval between them.
type IntervalClue struct {
	interval theory.Interval
	mode     audio.PlaybackMode
	settings IntervalSettings
}

var _ Clue = (*IntervalClue)(nil)

// NewIntervalClue builds a clue for an interval label and playback mode
// using the default settings.
func NewIntervalClue(label string, mode audio.PlaybackMode) (*IntervalClue, error) {
	return DefaultIntervalSettings().New(label, mode)
}

// New builds a clue with these settings. The interval must fit in the scale
// and each note must last a positive duration.
func (s IntervalSettings) New(label string, mode audio.PlaybackMode) (*IntervalClue, error) {
	if s.NoteDuration <= 0 {
		return nil, fmt.Errorf("note duration must be positive, got %v", s.NoteDuration)
	}
	iv, ok := theory.LookupInterval(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", theory.ErrUnknownInterval, label)
	}
	if _, err := audio.ParsePlaybackMode(string(mode)); err != nil {
		return nil, err
	}
	if _, err := s.Scale.Shift(s.Scale.Root(), iv.Semitones); err != nil {
		return nil, fmt.Errorf("interval %s: %w", label, err)
	}
	return &IntervalClue{interval: iv, mode: mode, settings: s}, nil
}

// IntervalVersion joins a label and mode into a version name.
func IntervalVersion(label string, mode audio.PlaybackMode) string {
	return label + "/" + string(mode)
}

// ParseIntervalVersion splits a version name such as "dim5/inverse".
func ParseIntervalVersion(version string) (string, audio.PlaybackMode, error) {
	label, mode, ok := strings.Cut(version, "/")
	if !ok {
		return "", "", fmt.Errorf("%w: version %q has no playback mode", theory.ErrUnknownInterval, version)
	}
	m, err := audio.ParsePlaybackMode(mode)
	if err != nil {
		return "", "", err
	}
	return label, m, nil
}

// Versions lists every interval and playback mode pair that fits the scale.
func (s IntervalSettings) Versions() []string {
	var out []string
	for _, iv := range theory.Intervals() {
		if _, err := s.Scale.Shift(s.Scale.Root(), iv.Semitones); err != nil {
			continue
		}
		for _, m := range audio.Modes() {
			out = append(out, IntervalVersion(iv.Label, m))
		}
	}
	return out
}

// Variant returns the pool entry for interval clues with these settings.
func (s IntervalSettings) Variant() Variant {
	return Variant{
		Name:     "interval",
		Kind:     KindInterval,
		Versions: s.Versions,
		New: func(version string) (Clue, error) {
			label, mode, err := ParseIntervalVersion(version)
			if err != nil {
				return nil, err
			}
			return s.New(label, mode)
		},
	}
}

// Interval returns the interval being asked for.
func (c *IntervalClue) Interval() theory.Interval { return c.interval }

// Mode returns how the two notes are played.
func (c *IntervalClue) Mode() audio.PlaybackMode { return c.mode }

// Render synthesizes the clue without playing it.
func (c *IntervalClue) Render() (audio.Buffer, error) {
	scale := c.settings.Scale
	root := scale.Root()
	rootFreq, err := scale.Shift(root, 0)
	if err != nil {
		return audio.Buffer{}, err
	}
	targetFreq, err := scale.Shift(root, c.interval.Semitones)
	if err != nil {
		return audio.Buffer{}, err
	}
	return audio.Interval(c.mode, rootFreq, targetFreq, c.settings.NoteDuration)
}

func (c *IntervalClue) Display(ctx context.Context, env Env) error {
	buf, err := c.Render()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(env.Out, "Listen: interval from %s, %s\n", c.settings.Scale.Root(), c.mode); err != nil {
		return err
	}
	sink := env.Sink
	if sink == nil {
		sink = audio.Discard
	}
	if err := sink.Play(ctx, buf); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPlayback, c.Version(), err)
	}
	return nil
}

func (c *IntervalClue) Answer() string { return c.interval.String() }

func (c *IntervalClue) IsCorrect(answer string) bool { return c.interval.Accepts(answer) }

func (c *IntervalClue) Type() string { return "Interval" }

func (c *IntervalClue) Version() string { return IntervalVersion(c.interval.Label, c.mode) }

// Intervals is the interval listening variant with default settings.
var Intervals = DefaultIntervalSettings().Variant()
