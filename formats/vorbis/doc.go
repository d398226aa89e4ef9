// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Buffer.
//
// github.com/jfreymuth/oggvorbis yields interleaved float32 samples in
// [-1, 1]. They are quantised to signed 16 bit with utils.Float32ToPCM16
// (negative values scale by 32768, positive by 32767) so the result
// enters the conversion pipeline like any 16-bit PCM source.
//
// Only mono and stereo streams are accepted:
//
//	buf, err := vorbis.Decoder{}.Decode(file)
//	switch {
//	case errors.Is(err, audio.ErrUnsupportedChannels):
//	    // surround stream
//	case errors.Is(err, audio.ErrMalformedContainer):
//	    // not Ogg Vorbis, or a corrupt packet
//	}
package vorbis
