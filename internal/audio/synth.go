package audio

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrUnknownMode is returned for a playback mode name that does not exist.
var ErrUnknownMode = errors.New("unknown playback mode")

// PlaybackMode says how the two notes of an interval are played.
type PlaybackMode string

const (
	// Ascending: root, then target.
	ModeDefault PlaybackMode = "default"
	// Descending: target, then root.
	ModeInverse PlaybackMode = "inverse"
	// Harmonic: both notes together.
	ModeSimultaneous PlaybackMode = "simultaneous"
)

// Modes lists every playback mode.
func Modes() []PlaybackMode {
	return []PlaybackMode{ModeDefault, ModeInverse, ModeSimultaneous}
}

// ParsePlaybackMode validates a mode name.
func ParsePlaybackMode(s string) (PlaybackMode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Sine renders a pure tone at freq for d, one sample per tick of SampleRate.
// Values are truncated toward zero. A non-positive d yields no samples.
func Sine(freq float64, d time.Duration) []int16 {
	if d <= 0 {
		return nil
	}
	n := int(int64(d) * SampleRate / int64(time.Second))
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / SampleRate
		out[i] = int16(Amplitude * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// Combine joins the root and target tones according to mode.
//
// Simultaneous mode adds the two signals without rescaling. With both tones
// peaking at Amplitude the sum stays inside the int16 range.
func Combine(mode PlaybackMode, root, target []int16) ([]int16, error) {
	switch mode {
	case ModeDefault:
		return concat(root, target), nil
	case ModeInverse:
		return concat(target, root), nil
	case ModeSimultaneous:
		n := max(len(root), len(target))
		out := make([]int16, n)
		for i := range out {
			var s int16
			if i < len(root) {
				s += root[i]
			}
			if i < len(target) {
				s += target[i]
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func concat(a, b []int16) []int16 {
	out := make([]int16, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Interval renders root and target tones of length d and combines them.
func Interval(mode PlaybackMode, rootFreq, targetFreq float64, d time.Duration) (Buffer, error) {
	samples, err := Combine(mode, Sine(rootFreq, d), Sine(targetFreq, d))
	if err != nil {
		return Buffer{}, err
	}
	return NewBuffer(samples), nil
}
