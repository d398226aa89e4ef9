// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/wav2h/audio"
)

var (
	// ErrNotMP3File indicates the stream has no decodable MPEG audio frame
	ErrNotMP3File = fmt.Errorf("%w: not an MP3 stream", audio.ErrMalformedContainer)

	// ErrTruncatedStream indicates a read failure after the first frame
	ErrTruncatedStream = fmt.Errorf("%w: MP3 stream ended unexpectedly", audio.ErrMalformedContainer)
)
