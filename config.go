// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"fmt"
	"math"

	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/header"
)

// Defaults used by DefaultConfig.
const (
	DefaultMaxDuration      = 5.0
	DefaultTargetSampleRate = 16000
	DefaultTargetBitDepth   = 16
)

// Config describes how one file is converted.
type Config struct {
	// MaxDuration caps the decoded audio, in seconds. Zero keeps
	// everything.
	MaxDuration float64

	TargetSampleRate int

	// TargetBitDepth is 8 or 16.
	TargetBitDepth int

	// Name is the C symbol prefix. Empty derives it from the input file.
	Name string

	Layout        header.Layout
	Interpolation audio.Interpolation
}

// DefaultConfig returns 5 seconds of 16-bit mono at 16 kHz, emitted as a
// pcm layout header with linear interpolation.
func DefaultConfig() Config {
	return Config{
		MaxDuration:      DefaultMaxDuration,
		TargetSampleRate: DefaultTargetSampleRate,
		TargetBitDepth:   DefaultTargetBitDepth,
		Layout:           header.LayoutPCM,
		Interpolation:    audio.Linear,
	}
}

// Validate checks every field. Empty Layout and Interpolation select
// their defaults and are valid.
func (c Config) Validate() error {
	if math.IsNaN(c.MaxDuration) || math.IsInf(c.MaxDuration, 0) || c.MaxDuration < 0 {
		return fmt.Errorf("%w: max duration %v", ErrInvalidConfig, c.MaxDuration)
	}

	if c.TargetSampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.TargetSampleRate)
	}

	if c.TargetBitDepth != 8 && c.TargetBitDepth != 16 {
		return fmt.Errorf("%w: bit depth %d (want 8 or 16)", ErrInvalidConfig, c.TargetBitDepth)
	}

	if c.Name != "" && !header.ValidIdentifier(c.Name) {
		return fmt.Errorf("%w: name %q is not a C identifier", ErrInvalidConfig, c.Name)
	}

	if _, err := header.ParseLayout(string(c.Layout)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if _, err := audio.ParseInterpolation(string(c.Interpolation)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
