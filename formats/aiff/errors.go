// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/wav2h/audio"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", audio.ErrMalformedContainer)

	// ErrUnsupportedDepth indicates a sample size other than 8, 16, 24 or 32 bits
	ErrUnsupportedDepth = fmt.Errorf("%w: AIFF sample size must be 8, 16, 24 or 32", audio.ErrUnsupportedFormat)

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", audio.ErrMalformedContainer)
)
