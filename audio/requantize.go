// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/wav2h/utils"
)

// SupportedBitDepth reports whether bits is a decodable integer PCM depth.
func SupportedBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}

// Range returns the signed sample range of a bit depth.
func Range(bits int) (lo, hi int) {
	switch bits {
	case 8:
		return math.MinInt8, math.MaxInt8
	case 24:
		return -1 << 23, 1<<23 - 1
	case 32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt16, math.MaxInt16
	}
}

// ToPCM16 rescales the buffer to signed 16-bit samples in place.
//
//	8  -> 16: s * 256 (the unsigned offset is already gone, see Buffer)
//	24 -> 16: s >> 8
//	32 -> 16: s >> 16
//
// Every result saturates to [-32768, 32767].
func ToPCM16(b *Buffer) error {
	var shift func(int) int

	switch b.BitDepth {
	case 8:
		shift = func(s int) int { return s * 256 }
	case 16:
		shift = func(s int) int { return s }
	case 24:
		shift = func(s int) int { return s >> 8 }
	case 32:
		shift = func(s int) int { return s >> 16 }
	default:
		return fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, b.BitDepth)
	}

	for i, s := range b.Samples {
		b.Samples[i] = utils.Clamp(shift(s), math.MinInt16, math.MaxInt16)
	}
	b.BitDepth = 16

	return nil
}

// ToPCM8 narrows a 16-bit buffer to signed 8-bit samples in place by
// dividing by 256 (rounding toward negative infinity) and saturating to
// [-128, 127]. An 8-bit buffer is left unchanged.
func ToPCM8(b *Buffer) error {
	switch b.BitDepth {
	case 8:
		return nil
	case 16:
	default:
		return fmt.Errorf("%w: cannot narrow %d-bit samples to 8-bit", ErrUnsupportedFormat, b.BitDepth)
	}

	for i, s := range b.Samples {
		b.Samples[i] = utils.Clamp(s>>8, math.MinInt8, math.MaxInt8)
	}
	b.BitDepth = 8

	return nil
}

// Requantize converts the buffer to the target bit depth, 8 or 16.
func Requantize(b *Buffer, bits int) error {
	switch bits {
	case 16:
		return ToPCM16(b)
	case 8:
		if b.BitDepth == 8 {
			return nil
		}
		if err := ToPCM16(b); err != nil {
			return err
		}
		return ToPCM8(b)
	default:
		return fmt.Errorf("%w: target depth %d-bit", ErrUnsupportedFormat, bits)
	}
}
