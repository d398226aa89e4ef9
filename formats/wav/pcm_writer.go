// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/wav2h/utils"
)

// HeaderSize is the length of the canonical RIFF/WAVE header written by WritePCM.
const HeaderSize = 44

// WritePCM writes a mono PCM WAV at sampleRate. bitDepth is 8 or 16 and
// samples must be signed values of that depth; 8-bit samples are stored
// with the unsigned WAV offset. Out of range samples saturate.
func WritePCM(w io.Writer, sampleRate, bitDepth int, samples []int) error {
	if bitDepth != 8 && bitDepth != 16 {
		return fmt.Errorf("%w: got %d", ErrInvalidWriteDepth, bitDepth)
	}

	numChannels := uint16(1)
	bytesPerSample := bitDepth / 8
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bytesPerSample)
	blockAlign := numChannels * uint16(bytesPerSample)
	dataSize := uint32(len(samples) * bytesPerSample)
	riffSize := 36 + dataSize

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(bitDepth))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192 // samples per write
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*bytesPerSample)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*bytesPerSample]

		if bitDepth == 8 {
			for j, s := range chunk {
				buf[j] = byte(utils.Clamp(s, math.MinInt8, math.MaxInt8) + 128)
			}
		} else {
			for j, s := range chunk {
				v := int16(utils.Clamp(s, math.MinInt16, math.MaxInt16))
				binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(v))
			}
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
