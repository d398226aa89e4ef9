// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"
	"strings"
)

// Layout selects how samples are laid out in the emitted array.
type Layout string

const (
	// LayoutPCM emits the samples themselves as signed decimal literals.
	LayoutPCM Layout = "pcm"

	// LayoutWAV emits a complete mono WAV file as hex bytes, for players
	// that parse a RIFF header at runtime.
	LayoutWAV Layout = "wav"
)

// ParseLayout maps a layout name to a Layout. The empty string selects
// LayoutPCM.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutPCM:
		return LayoutPCM, nil
	case LayoutWAV:
		return LayoutWAV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
}

func (l Layout) String() string { return string(l) }

// perLine is the number of array elements on each line.
func (l Layout) perLine() int {
	if l == LayoutWAV {
		return 12
	}
	return 16
}
