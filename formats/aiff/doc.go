// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes Audio Interchange File Format files.
//
// It wraps github.com/go-audio/aiff and accepts uncompressed AIFF with 8,
// 16, 24 or 32-bit samples. AIFF is big-endian and stores 8-bit samples
// signed, so unlike WAV no offset needs to be removed.
//
//	file, _ := os.Open("snare.aiff")
//	buf, err := aiff.Decoder{}.Decode(file)
//
// Errors wrap audio.ErrMalformedContainer (ErrNotAiffFile,
// ErrUnsupportedAiffLayout) or audio.ErrUnsupportedFormat
// (ErrUnsupportedDepth).
package aiff
