// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/wav2h/audio"
)

var (
	ErrNotWavFile        = fmt.Errorf("%w: not a WAV file", audio.ErrMalformedContainer)
	ErrMissingPCMData    = fmt.Errorf("%w: no readable data chunk", audio.ErrMalformedContainer)
	ErrNotPCM            = fmt.Errorf("%w: only integer PCM WAV is supported", audio.ErrUnsupportedFormat)
	ErrUnsupportedDepth  = fmt.Errorf("%w: WAV bit depth must be 8, 16, 24 or 32", audio.ErrUnsupportedFormat)
	ErrInvalidWriteDepth = errors.New("WAV writer supports 8 and 16-bit samples only")
)
