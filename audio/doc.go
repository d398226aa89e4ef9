// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample buffer and the processing
// stages used to turn decoded audio into microcontroller-ready PCM.
//
// This package contains the core building blocks:
//   - Buffer, a block of interleaved signed integer samples
//   - Requantizer (ToPCM16, ToPCM8, Requantize) for bit depth changes
//   - MixToMono for stereo to mono folding
//   - Resample for sample rate conversion
//   - Decoder interface and a format Registry
//
// # Buffer
//
// A Buffer carries its samples together with the sample rate, channel
// count and bit depth they are expressed in:
//
//	buf := &audio.Buffer{
//	    Samples:    []int{-128, 0, 127, -64},
//	    SampleRate: 8000,
//	    Channels:   1,
//	    BitDepth:   8,
//	}
//
// Samples are always signed; 8-bit decoders subtract the WAV offset of 128.
// Every stage rewrites the buffer in place.
//
// # Pipeline
//
// A complete conversion runs the stages in this order:
//
//	buf.Truncate(5.0)              // optional duration ceiling
//	audio.ToPCM16(buf)             // any supported depth -> 16-bit
//	audio.MixToMono(buf)           // stereo -> mono
//	audio.Resample(buf, 16000, audio.Linear)
//	audio.Requantize(buf, 8)       // 16-bit -> 8-bit if wanted
//
// # Requantization
//
// Widening from 8-bit multiplies by 256. Narrowing from 24 and 32-bit uses
// an arithmetic right shift. Narrowing from 16 to 8-bit divides by 256.
// Every narrowing step saturates instead of wrapping around.
//
// # Resampling
//
// Resample picks round(n * dst / src) evenly spaced positions over the
// input and interpolates between neighbouring samples. Linear interpolation
// is the default; Cubic (Catmull-Rom) is available for smoother results at
// the cost of possible overshoot, which is clipped to the bit depth.
// Neither method applies an anti-aliasing filter.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Error Handling
//
// Errors wrap one of the package sentinels and can be classified with
// errors.Is:
//   - ErrUnsupportedFormat: bit depth or encoding the converter cannot handle
//   - ErrMalformedContainer: broken container structure
//   - ErrUnsupportedChannels: more than two channels, or non-mono resampling
//   - ErrInvalidSampleRate: zero or negative rates
package audio
