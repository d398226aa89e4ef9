// SPDX-License-Identifier: EPL-2.0

package header

import (
	"path/filepath"
	"strings"
)

const fallbackIdentifier = "audio"

// Identifier derives a C identifier from a file path: the base name
// without extension, lower-cased, with every character outside
// [a-z0-9_] replaced by an underscore. A leading digit gets an underscore
// prefix.
//
//	"sounds/Kick Drum-01.wav" -> "kick_drum_01"
//	"808.wav"                 -> "_808"
func Identifier(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)

	if base == "" || base == "." || base == string(filepath.Separator) {
		return fallbackIdentifier
	}

	var sb strings.Builder
	sb.Grow(len(base) + 1)

	if base[0] >= '0' && base[0] <= '9' {
		sb.WriteByte('_')
	}

	for _, r := range base {
		if validRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	return sb.String()
}

// ValidIdentifier reports whether name can be used as-is as a symbol
// prefix.
func ValidIdentifier(name string) bool {
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return false
	}
	for _, r := range name {
		if !validRune(r) && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// Guard returns the include guard macro for an identifier.
func Guard(name string) string {
	return strings.ToUpper(name) + "_H"
}

func validRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}
