// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/wav2h/audio"
)

var (
	// ErrNotVorbisFile indicates the stream has no valid Ogg Vorbis headers
	ErrNotVorbisFile = fmt.Errorf("%w: not an Ogg Vorbis stream", audio.ErrMalformedContainer)

	// ErrCorruptStream indicates a packet failed to decode
	ErrCorruptStream = fmt.Errorf("%w: corrupt Ogg Vorbis stream", audio.ErrMalformedContainer)
)
