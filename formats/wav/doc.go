// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is built on github.com/go-audio/wav, which walks the RIFF chunk
// list, so files carrying LIST, smpl or other extra chunks before the data
// chunk are accepted.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM at 8, 16, 24 and 32 bits (format tag 1, or 0xFFFE)
//   - Mono and stereo
//   - Any sample rate
//
// IEEE float WAV files are rejected.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("kick.wav")
//	buf, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The returned audio.Buffer holds signed samples at the file's own bit
// depth. WAV stores 8-bit audio unsigned; the decoder subtracts 128 so
// that silence is 0 at every depth.
//
// # Writing WAV Files
//
// WritePCM creates a mono 8 or 16-bit PCM file with a canonical 44-byte
// header. The header package uses it to embed complete WAV images in C
// sources:
//
//	var out bytes.Buffer
//	err := wav.WritePCM(&out, 16000, 16, samples)
//
// # Error Handling
//
// Decoder errors wrap the audio package sentinels:
//   - ErrNotWavFile, ErrMissingPCMData: audio.ErrMalformedContainer
//   - ErrNotPCM, ErrUnsupportedDepth: audio.ErrUnsupportedFormat
//   - more than two channels: audio.ErrUnsupportedChannels
package wav
