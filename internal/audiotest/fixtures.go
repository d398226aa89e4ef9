// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds in-memory audio fixtures for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAVE format tags.
const (
	FormatPCM        = 1
	FormatFloat      = 3
	FormatExtensible = 0xFFFE
)

// WAV encodes samples as an integer PCM RIFF/WAVE file.
// 8-bit samples are written as raw unsigned bytes (0..255), every other
// depth as signed little-endian integers.
func WAV(sampleRate, channels, bitDepth int, samples []int) []byte {
	return WAVWithFormat(FormatPCM, sampleRate, channels, bitDepth, PCMBytes(bitDepth, samples))
}

// WAVWithFormat wraps raw sample bytes in a canonical 44-byte header with
// the given format tag.
func WAVWithFormat(format, sampleRate, channels, bitDepth int, data []byte) []byte {
	buf := new(bytes.Buffer)

	bytesPerSample := (bitDepth + 7) / 8
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+len(data)+len(data)%2))
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(format))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitDepth))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0) // RIFF pad byte
	}

	return buf.Bytes()
}

// WAVExtensible encodes samples behind a 40-byte WAVE_FORMAT_EXTENSIBLE
// fmt chunk whose sub-format GUID starts with subFormat.
func WAVExtensible(subFormat, sampleRate, channels, bitDepth int, samples []int) []byte {
	data := PCMBytes(bitDepth, samples)
	buf := new(bytes.Buffer)

	bytesPerSample := (bitDepth + 7) / 8
	byteRate := uint32(sampleRate * channels * bytesPerSample)
	blockAlign := uint16(channels * bytesPerSample)

	const fmtSize = 40

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+8+fmtSize+8+len(data)+len(data)%2))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(fmtSize))
	binary.Write(buf, binary.LittleEndian, uint16(FormatExtensible))
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitDepth))
	binary.Write(buf, binary.LittleEndian, uint16(22)) // cbSize
	binary.Write(buf, binary.LittleEndian, uint16(bitDepth))
	binary.Write(buf, binary.LittleEndian, uint32(0)) // channel mask
	binary.Write(buf, binary.LittleEndian, uint16(subFormat))
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

// WAVWithoutData returns a header holding RIFF, WAVE and fmt chunks but no
// data chunk.
func WAVWithoutData(sampleRate, channels, bitDepth int) []byte {
	full := WAV(sampleRate, channels, bitDepth, nil)
	out := bytes.Clone(full[:36])
	binary.LittleEndian.PutUint32(out[4:8], 28)
	return out
}

// PCMBytes serialises samples the way WAV stores them.
func PCMBytes(bitDepth int, samples []int) []byte {
	buf := new(bytes.Buffer)

	for _, s := range samples {
		switch bitDepth {
		case 8:
			buf.WriteByte(byte(s))
		case 16:
			binary.Write(buf, binary.LittleEndian, int16(s))
		case 24:
			v := uint32(int32(s))
			buf.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
		case 32:
			binary.Write(buf, binary.LittleEndian, int32(s))
		default:
			// Odd depths (e.g. 12-bit) are stored in 16-bit containers.
			binary.Write(buf, binary.LittleEndian, int16(s))
		}
	}

	return buf.Bytes()
}

// Sine returns n samples of a sine wave with the given peak amplitude.
func Sine(n, sampleRate int, frequency, amplitude float64) []int {
	out := make([]int, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int(math.Round(amplitude * math.Sin(2*math.Pi*frequency*t)))
	}
	return out
}

// Interleave merges per-channel sample slices of equal length.
func Interleave(channels ...[]int) []int {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	out := make([]int, 0, frames*len(channels))
	for f := range frames {
		for _, ch := range channels {
			out = append(out, ch[f])
		}
	}
	return out
}
