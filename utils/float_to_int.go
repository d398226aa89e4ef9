// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundClamp rounds x half away from zero and saturates it to [lo, hi].
func RoundClamp(x float64, lo, hi int) int {
	r := math.Round(x)
	if r < float64(lo) {
		return lo
	}
	if r > float64(hi) {
		return hi
	}
	return int(r)
}

// Float32ToPCM16 converts a normalised [-1, 1] sample to a signed 16-bit
// value. Out of range input saturates.
func Float32ToPCM16(x float32) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int(x * 32768.0)
	}
	// 32767 for positive max to avoid overflow
	return int(x * 32767.0)
}
