package timer

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
)

// Notifier announces that a countdown finished. Failures are reported to
// the caller, which logs and ignores them.
type Notifier interface {
	Notify(ctx context.Context) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context) error

func (f NotifierFunc) Notify(ctx context.Context) error { return f(ctx) }

// NoopNotifier does nothing.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context) error { return nil }

// BellNotifier rings the terminal bell.
type BellNotifier struct {
	W io.Writer
}

func (b BellNotifier) Notify(context.Context) error {
	if b.W == nil {
		return errors.New("bell: no terminal writer")
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

// MultiNotifier fires every notifier and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Tone parameters for the completion chime.
const (
	toneFrequency  = 800.0
	toneSeconds    = 0.5
	toneStartGain  = 0.3
	toneEndGain    = 0.01
	toneSampleRate = 22050
)

// DefaultPlayers lists audio players tried in order.
var DefaultPlayers = []string{"paplay", "pw-play", "aplay", "afplay"}

// ToneNotifier synthesises a short sine chime and plays it through the
// first audio player found on PATH.
type ToneNotifier struct {
	Players  []string
	LookPath func(string) (string, error)
	Play     func(ctx context.Context, player, path string) error
}

// NewToneNotifier returns a ToneNotifier using the system's players.
func NewToneNotifier() *ToneNotifier {
	return &ToneNotifier{
		Players:  DefaultPlayers,
		LookPath: exec.LookPath,
		Play: func(ctx context.Context, player, path string) error {
			return exec.CommandContext(ctx, player, path).Run()
		},
	}
}

func (n *ToneNotifier) Notify(ctx context.Context) error {
	player, err := n.findPlayer()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "physio-chime-*.wav")
	if err != nil {
		return fmt.Errorf("creating chime file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(ChimeWAV()); err != nil {
		f.Close()
		return fmt.Errorf("writing chime file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing chime file: %w", err)
	}

	if err := n.Play(ctx, player, f.Name()); err != nil {
		return fmt.Errorf("playing chime with %s: %w", player, err)
	}
	return nil
}

func (n *ToneNotifier) findPlayer() (string, error) {
	for _, p := range n.Players {
		if path, err := n.LookPath(p); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no audio player found (tried %v)", n.Players)
}

// ChimeWAV renders the completion chime as a mono 16-bit PCM WAV: an
// 800 Hz sine whose gain ramps exponentially from 0.3 to 0.01 over half a
// second.
func ChimeWAV() []byte {
	samples := int(toneSampleRate * toneSeconds)
	pcm := make([]int16, samples)
	ratio := toneEndGain / toneStartGain
	for i := range pcm {
		t := float64(i) / toneSampleRate
		gain := toneStartGain * math.Pow(ratio, t/toneSeconds)
		v := gain * math.Sin(2*math.Pi*toneFrequency*t)
		pcm[i] = int16(v * math.MaxInt16)
	}

	var buf bytes.Buffer
	dataLen := uint32(len(pcm) * 2)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(toneSampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, pcm)
	return buf.Bytes()
}
