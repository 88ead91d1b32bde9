package audio

import "github.com/faiface/beep"

// Streamer returns a beep.Streamer that plays the buffer once. Samples are
// scaled to [-1, 1) and copied to both beep channels.
func (b Buffer) Streamer() beep.Streamer {
	return &bufferStreamer{samples: b.Samples}
}

// BeepFormat returns the beep equivalent of the buffer format.
func (b Buffer) BeepFormat() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(b.Format.SampleRate),
		NumChannels: b.Format.Channels,
		Precision:   b.Format.BitDepth / 8,
	}
}

type bufferStreamer struct {
	samples []int16
	pos     int
}

const fullScale = 1 << (BitDepth - 1)

func (s *bufferStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := 0
	for n < len(out) && s.pos < len(s.samples) {
		v := float64(s.samples[s.pos]) / fullScale
		out[n][0], out[n][1] = v, v
		n++
		s.pos++
	}
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }
