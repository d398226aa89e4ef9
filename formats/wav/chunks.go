// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"io"

	"github.com/go-audio/riff"
)

// chunkInfo holds what go-audio/wav does not expose: the data chunk size
// as declared (the decoder rounds it up to the pad byte) and the
// sub-format of a WAVE_FORMAT_EXTENSIBLE fmt chunk.
type chunkInfo struct {
	dataSize  int    // -1 when no data chunk was found
	subFormat uint16 // 0 unless the fmt chunk is extensible
}

// extensible fmt chunks carry the sub-format GUID at this offset; its first
// two bytes are the plain format tag.
const subFormatOffset = 24

// scanChunks walks the chunk list of the container starting at the current
// position of rs, then seeks back to it.
func scanChunks(rs io.ReadSeeker) (chunkInfo, error) {
	info := chunkInfo{dataSize: -1}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return info, err
	}
	defer rs.Seek(start, io.SeekStart)

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return info, err
	}

	for {
		id, size, err := p.IDnSize()
		if err != nil {
			// end of the chunk list
			return info, nil
		}

		switch id {
		case riff.DataFormatID:
			info.dataSize = int(size)
			return info, nil
		case riff.FmtID:
			body := make([]byte, size)
			if _, err := io.ReadFull(rs, body); err != nil {
				return info, err
			}
			if len(body) >= subFormatOffset+2 &&
				binary.LittleEndian.Uint16(body) == formatExtensible {
				info.subFormat = binary.LittleEndian.Uint16(body[subFormatOffset:])
			}
			if size%2 == 1 {
				if _, err := rs.Seek(1, io.SeekCurrent); err != nil {
					return info, err
				}
			}
		default:
			if _, err := rs.Seek(int64(size)+int64(size%2), io.SeekCurrent); err != nil {
				return info, err
			}
		}
	}
}

// trimPad drops samples read past the declared data chunk size. go-audio
// decodes the RIFF pad byte of an odd-sized chunk as one more sample.
func trimPad(data []int, dataSize, bitDepth int) []int {
	bytesPerSample := (bitDepth-1)/8 + 1
	if n := dataSize / bytesPerSample; dataSize >= 0 && n < len(data) {
		return data[:n]
	}
	return data
}
