package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// ErrNoPlayer is returned when the configured player command is missing.
var ErrNoPlayer = errors.New("audio player not available")

// Sink turns a rendered buffer into sound. Play blocks until playback ends.
type Sink interface {
	Play(ctx context.Context, b Buffer) error
}

// Discard is a Sink that drops every buffer.
var Discard Sink = discard{}

type discard struct{}

func (discard) Play(context.Context, Buffer) error { return nil }

// DefaultPlayer plays a file and exits when it ends.
const DefaultPlayer = "ffplay -nodisp -autoexit -loglevel error"

// FileSink writes each buffer to a temporary artifact and runs an external
// player on it. The artifact is removed after the player exits, whether
// playback worked or not.
type FileSink struct {
	Format  ArtifactFormat
	Command []string // player argv; the artifact path is appended
	Dir     string   // temp dir, os.TempDir when empty
}

// NewFileSink creates a file sink. player is split on whitespace.
func NewFileSink(format ArtifactFormat, player, dir string) (*FileSink, error) {
	cmd := strings.Fields(player)
	if len(cmd) == 0 {
		return nil, fmt.Errorf("%w: empty player command", ErrNoPlayer)
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	return &FileSink{Format: format, Command: cmd, Dir: dir}, nil
}

// Play implements Sink.
func (s *FileSink) Play(ctx context.Context, b Buffer) error {
	a, err := CreateArtifact(s.Dir, s.Format, b)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Remove(); err != nil {
			log.Printf("Cleanup failed: %v", err)
		}
	}()
	return runPlayer(ctx, s.Command, a.Path)
}

func runPlayer(ctx context.Context, command []string, path string) error {
	bin, err := exec.LookPath(command[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoPlayer, err)
	}
	args := append(append([]string{}, command[1:]...), path)
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %w: %s", command[0], path, err, msg)
		}
		return fmt.Errorf("%s %s: %w", command[0], path, err)
	}
	return nil
}

// SpeakerSink plays buffers in-process on the default output device.
type SpeakerSink struct {
	once    sync.Once
	initErr error
}

// Play implements Sink. The device is opened on first use with the format of
// the first buffer.
func (s *SpeakerSink) Play(ctx context.Context, b Buffer) error {
	s.once.Do(func() {
		sr := beep.SampleRate(b.Format.SampleRate)
		s.initErr = speaker.Init(sr, sr.N(100*time.Millisecond))
	})
	if s.initErr != nil {
		return fmt.Errorf("speaker init: %w", s.initErr)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(b.Streamer(), beep.Callback(func() { close(done) })))
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
