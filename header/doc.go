// SPDX-License-Identifier: EPL-2.0

// Package header renders a mono 8 or 16-bit audio.Buffer as a C header
// for Arduino style toolchains.
//
// # Layouts
//
// LayoutPCM (the default) stores the samples themselves:
//
//	const int16_t kick_data[] PROGMEM = {
//	         0,   -100,  32767
//	};
//
//	const uint32_t kick_length = 3;
//	const uint32_t kick_sample_rate = 16000;
//
// 8-bit buffers use int8_t and a four character field, 16-bit buffers
// use int16_t and a six character field. Sixteen values go on each line.
//
// LayoutWAV stores a complete RIFF/WAVE file as uint8_t hex literals,
// twelve to a line, together with kick_wav_size. Use it with players
// that parse the WAV header on the device.
//
// Every header is wrapped in an include guard derived from the symbol
// prefix, includes <Arduino.h> for PROGMEM and carries a comment block
// naming the source file, rate, duration, depth and sample count. Output
// contains no timestamps and is identical for identical input.
//
// # Reading headers back
//
// Parse recovers the array and constants from a generated header and
// Parsed.Check verifies that the length constant matches the array. The
// wav2h verify command is built on it.
package header
