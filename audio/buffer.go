// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// Buffer is an in-memory block of interleaved PCM samples.
//
// Samples are always signed. Decoders of formats that store 8-bit audio
// unsigned (WAV) remove the 128 offset, so an 8-bit Buffer holds values in
// [-128, 127] regardless of the source container.
type Buffer struct {
	Samples    []int
	SampleRate int
	Channels   int
	BitDepth   int
}

// Info is a printable summary of a Buffer.
type Info struct {
	SampleRate int           `json:"sample_rate" yaml:"sample_rate"`
	Channels   int           `json:"channels" yaml:"channels"`
	BitDepth   int           `json:"bit_depth" yaml:"bit_depth"`
	Frames     int           `json:"frames" yaml:"frames"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Frames returns the number of complete frames in the buffer.
func (b *Buffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Seconds returns the playback length of the buffer in seconds.
func (b *Buffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// Info summarises the buffer's format and length.
func (b *Buffer) Info() Info {
	return Info{
		SampleRate: b.SampleRate,
		Channels:   b.Channels,
		BitDepth:   b.BitDepth,
		Frames:     b.Frames(),
		Duration:   b.Duration(),
	}
}

// Validate checks the buffer's format fields.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}
	if b.Channels != 1 && b.Channels != 2 {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, b.Channels)
	}
	if !SupportedBitDepth(b.BitDepth) {
		return fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, b.BitDepth)
	}
	return nil
}

// MaxFrames returns floor(maxSeconds * sampleRate), the number of frames
// that fit in maxSeconds. A non-positive maxSeconds means no limit and
// yields -1.
func MaxFrames(maxSeconds float64, sampleRate int) int {
	if maxSeconds <= 0 {
		return -1
	}
	return int(math.Floor(maxSeconds * float64(sampleRate)))
}

// Truncate drops every frame past maxSeconds and reports whether anything
// was dropped. A buffer exactly maxSeconds long is left alone.
func (b *Buffer) Truncate(maxSeconds float64) bool {
	limit := MaxFrames(maxSeconds, b.SampleRate)
	if limit < 0 || b.Frames() <= limit {
		return false
	}

	b.Samples = b.Samples[:limit*b.Channels]
	return true
}
