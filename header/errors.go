// SPDX-License-Identifier: EPL-2.0

package header

import "errors"

var (
	// ErrEmptyBuffer is returned when there are no samples to emit
	ErrEmptyBuffer = errors.New("no samples to encode")

	// ErrNotMono indicates the buffer still has more than one channel
	ErrNotMono = errors.New("header data must be mono")

	// ErrUnsupportedDepth indicates a sample depth other than 8 or 16 bits
	ErrUnsupportedDepth = errors.New("header data must be 8 or 16-bit")

	// ErrInvalidName indicates the identifier is not a valid C identifier
	ErrInvalidName = errors.New("invalid C identifier")

	// ErrUnknownLayout indicates an unrecognised layout name
	ErrUnknownLayout = errors.New("unknown header layout")

	// ErrMalformedHeader is returned by Parse for text it cannot read back
	ErrMalformedHeader = errors.New("malformed header")
)
