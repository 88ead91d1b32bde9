package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/faiface/beep/wav"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4/pkg/media/oggwriter"
	"gopkg.in/hraban/opus.v2"
)

// ErrUnknownFormat is returned for an artifact format that does not exist.
var ErrUnknownFormat = errors.New("unknown audio format")

// ArtifactFormat is the on-disk encoding of a rendered clue.
type ArtifactFormat string

const (
	FormatWAV  ArtifactFormat = "wav"
	FormatOpus ArtifactFormat = "opus" // Ogg Opus
	FormatRaw  ArtifactFormat = "raw"  // headerless s16le, interleaved
)

// ParseFormat validates a format name.
func ParseFormat(s string) (ArtifactFormat, error) {
	switch f := ArtifactFormat(s); f {
	case FormatWAV, FormatOpus, FormatRaw:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension for the format.
func (f ArtifactFormat) Ext() string {
	switch f {
	case FormatOpus:
		return ".ogg"
	case FormatRaw:
		return ".pcm"
	default:
		return ".wav"
	}
}

// Artifact is a temporary file holding one encoded clue. The file is
// complete and closed once CreateArtifact returns; Remove deletes it.
type Artifact struct {
	Path   string
	Format ArtifactFormat
}

// CreateArtifact encodes b into a uniquely named file in dir (os.TempDir
// when dir is empty). A partially written file is removed on failure.
func CreateArtifact(dir string, format ArtifactFormat, b Buffer) (*Artifact, error) {
	f, err := os.CreateTemp(dir, "termmusic-*"+format.Ext())
	if err != nil {
		return nil, fmt.Errorf("create audio artifact: %w", err)
	}
	a := &Artifact{Path: f.Name(), Format: format}

	err = encode(f, format, b)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(a.Path)
		return nil, fmt.Errorf("write %s artifact: %w", format, err)
	}
	return a, nil
}

// Remove deletes the artifact file. Removing twice is not an error.
func (a *Artifact) Remove() error {
	if err := os.Remove(a.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove audio artifact: %w", err)
	}
	return nil
}

func encode(f *os.File, format ArtifactFormat, b Buffer) error {
	switch format {
	case FormatWAV:
		return wav.Encode(f, b.Streamer(), b.BeepFormat())
	case FormatOpus:
		return writeOpus(f, b)
	case FormatRaw:
		_, err := f.Write(SamplesToBytes(b.Interleaved()))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Ogg Opus granule positions always count 48kHz ticks.
const opusClockRate = 48000

// writeOpus encodes b as 20ms Opus frames in an Ogg container. The last
// frame is padded with silence.
func writeOpus(w io.Writer, b Buffer) error {
	ch := b.Format.Channels
	enc, err := opus.NewEncoder(b.Format.SampleRate, ch, opus.AppAudio)
	if err != nil {
		return fmt.Errorf("opus encoder: %w", err)
	}
	// hide Close so the caller keeps ownership of the file
	ogg, err := oggwriter.NewWith(struct{ io.Writer }{w}, uint32(b.Format.SampleRate), uint16(ch))
	if err != nil {
		return fmt.Errorf("ogg writer: %w", err)
	}

	frameLen := FrameSamples
	if b.Format != DefaultFormat {
		frameLen = b.Format.SampleRate * int(FrameDuration/time.Millisecond) / 1000 * ch
	}
	tick := uint32(opusClockRate * FrameDuration.Milliseconds() / 1000)

	pcm := b.Interleaved()
	if rem := len(pcm) % frameLen; rem != 0 {
		pcm = append(pcm, make([]int16, frameLen-rem)...)
	}

	opusBuf := make([]byte, 4000)
	var seq uint16
	var ts uint32
	for off := 0; off < len(pcm); off += frameLen {
		n, err := enc.Encode(pcm[off:off+frameLen], opusBuf)
		if err != nil {
			return fmt.Errorf("opus encode: %w", err)
		}
		pkt := &rtp.Packet{
			Header: rtp.Header{
				Version:        2,
				PayloadType:    111,
				SequenceNumber: seq,
				Timestamp:      ts,
				SSRC:           1,
			},
			Payload: opusBuf[:n],
		}
		if err := ogg.WriteRTP(pkt); err != nil {
			return fmt.Errorf("ogg write: %w", err)
		}
		seq++
		ts += tick
	}
	return ogg.Close()
}
