// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III files into an audio.Buffer.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit little-endian stereo PCM at the stream's sample rate. Mono MP3s
// come out with both channels equal, so the mixer later in the pipeline
// restores the original signal exactly.
//
//	buf, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, audio.ErrMalformedContainer) {
//	    // not an MP3 stream
//	}
//
// The whole stream is decoded into memory. The converter limits how much
// of it ends up in the header, not how much is decoded.
package mp3
