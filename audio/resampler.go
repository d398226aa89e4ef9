// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/wav2h/utils"
)

// Interpolation selects how the resampler estimates values between
// source samples.
type Interpolation string

const (
	// Linear interpolates between the two nearest source samples.
	Linear Interpolation = "linear"
	// Cubic fits a Catmull-Rom spline through the four nearest samples.
	Cubic Interpolation = "cubic"
)

// ParseInterpolation maps a name to an Interpolation. An empty name
// selects Linear.
func ParseInterpolation(name string) (Interpolation, error) {
	switch Interpolation(strings.ToLower(strings.TrimSpace(name))) {
	case "", Linear:
		return Linear, nil
	case Cubic:
		return Cubic, nil
	default:
		return "", fmt.Errorf("unknown interpolation %q (want linear or cubic)", name)
	}
}

// ResampledLength returns round(n * dstRate / srcRate).
func ResampledLength(n, srcRate, dstRate int) int {
	if n <= 0 || srcRate <= 0 || dstRate <= 0 {
		return 0
	}
	return int(math.Round(float64(n) * float64(dstRate) / float64(srcRate)))
}

// Resample converts a mono buffer to dstRate in place.
//
// The output has ResampledLength samples taken at evenly spaced positions
// over the closed range [0, n-1] of the input, so the first and last input
// samples are always kept. Interpolated values are rounded and saturated to
// the buffer's bit depth. Equal rates leave the buffer untouched.
func Resample(b *Buffer, dstRate int, method Interpolation) error {
	if dstRate <= 0 {
		return fmt.Errorf("%w: target %d Hz", ErrInvalidSampleRate, dstRate)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: source %d Hz", ErrInvalidSampleRate, b.SampleRate)
	}
	if b.Channels != 1 {
		return fmt.Errorf("%w: resampling needs mono input, got %d channels", ErrUnsupportedChannels, b.Channels)
	}
	if b.SampleRate == dstRate {
		return nil
	}

	var interp func(src []int, pos float64) float64
	switch method {
	case Linear, "":
		interp = linearAt
	case Cubic:
		interp = cubicAt
	default:
		return fmt.Errorf("unknown interpolation %q", method)
	}

	src := b.Samples
	n := len(src)
	outLen := ResampledLength(n, b.SampleRate, dstRate)
	out := make([]int, outLen)
	lo, hi := Range(b.BitDepth)

	// Step between query positions; a single output sample sits at 0.
	var step float64
	if outLen > 1 {
		step = float64(n-1) / float64(outLen-1)
	}

	for i := range outLen {
		pos := float64(i) * step
		if pos > float64(n-1) {
			pos = float64(n - 1)
		}
		out[i] = utils.RoundClamp(interp(src, pos), lo, hi)
	}

	b.Samples = out
	b.SampleRate = dstRate

	return nil
}

func linearAt(src []int, pos float64) float64 {
	i0 := int(pos)
	i1 := min(i0+1, len(src)-1)
	return utils.Lerp(float64(src[i0]), float64(src[i1]), pos-float64(i0))
}

func cubicAt(src []int, pos float64) float64 {
	last := len(src) - 1
	i1 := int(pos)
	i0 := max(i1-1, 0)
	i2 := min(i1+1, last)
	i3 := min(i1+2, last)

	return utils.CubicInterpolate(
		float64(src[i0]), float64(src[i1]), float64(src[i2]), float64(src[i3]),
		pos-float64(i1),
	)
}
