package audio

import "time"

const (
	SampleRate = 16000
	Channels   = 2
	BitDepth   = 16
	Amplitude  = (1 << (BitDepth - 1)) / 4 // a quarter of the int16 range

	FrameDuration = 20 * time.Millisecond
	FrameSize     = SampleRate * int(FrameDuration/time.Millisecond) / 1000 // samples per channel per frame
	FrameSamples  = FrameSize * Channels                                    // interleaved samples per frame
)

// Format describes how a Buffer is laid out.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// DefaultFormat is the format every synthesized clue uses.
var DefaultFormat = Format{SampleRate: SampleRate, Channels: Channels, BitDepth: BitDepth}

// Buffer holds the rendered audio of one clue. Samples are mono; every
// channel plays the same signal.
type Buffer struct {
	Format  Format
	Samples []int16
}

// NewBuffer wraps samples in the default format.
func NewBuffer(samples []int16) Buffer {
	return Buffer{Format: DefaultFormat, Samples: samples}
}

// Duration returns the playing time of the buffer.
func (b Buffer) Duration() time.Duration {
	if b.Format.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.Format.SampleRate)
}

// Interleaved returns the samples with each one repeated for every channel.
func (b Buffer) Interleaved() []int16 {
	ch := b.Format.Channels
	if ch <= 1 {
		out := make([]int16, len(b.Samples))
		copy(out, b.Samples)
		return out
	}
	out := make([]int16, len(b.Samples)*ch)
	for i, s := range b.Samples {
		for c := 0; c < ch; c++ {
			out[i*ch+c] = s
		}
	}
	return out
}
