// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wav2h/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels       = 2
	bitDepth       = 16
	readChunk      = 8192 // bytes per read
	bytesPerSample = 2
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return decode(dec)
}

// decode drains the reader into a Buffer.
func decode(dec mp3Reader) (*audio.Buffer, error) {
	raw := make([]byte, readChunk)

	var (
		samples []int
		pending []byte // odd byte left from a short read
	)

	for {
		n, err := dec.Read(raw)
		if n > 0 {
			data := append(pending, raw[:n]...)
			whole := len(data) - len(data)%bytesPerSample

			for i := 0; i < whole; i += bytesPerSample {
				samples = append(samples, int(int16(binary.LittleEndian.Uint16(data[i:]))))
			}
			pending = append(pending[:0], data[whole:]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncatedStream, err)
		}
		if n == 0 {
			break
		}
	}

	// drop a dangling half frame
	samples = samples[:len(samples)-len(samples)%channels]

	return &audio.Buffer{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
		Channels:   channels,
		BitDepth:   bitDepth,
	}, nil
}
