// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat reports a sample encoding or bit depth the
	// converter cannot handle (anything but 8, 16, 24 or 32-bit integer PCM).
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrMalformedContainer reports a broken container, such as a WAV file
	// without RIFF/WAVE magic or without fmt/data chunks.
	ErrMalformedContainer = errors.New("malformed audio container")

	// ErrUnsupportedChannels reports a channel count other than 1 or 2.
	ErrUnsupportedChannels = errors.New("unsupported channel count")

	// ErrInvalidSampleRate reports a zero or negative sample rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
