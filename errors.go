// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"errors"
	"fmt"

	"github.com/ik5/wav2h/audio"
)

var (
	// ErrFileNotFound indicates the input file does not exist
	ErrFileNotFound = errors.New("input file not found")

	// ErrUnsupportedExtension indicates no decoder is registered for the
	// input's extension
	ErrUnsupportedExtension = fmt.Errorf("%w: no decoder for file extension", audio.ErrUnsupportedFormat)

	// ErrInvalidConfig indicates a Config field is out of range
	ErrInvalidConfig = errors.New("invalid conversion config")
)
