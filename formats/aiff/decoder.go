// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wav2h/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

const readChunk = 4096

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	bitDepth := int(dec.BitDepth)
	if !audio.SupportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w, got %d", ErrUnsupportedDepth, bitDepth)
	}

	return decode(dec, bitDepth)
}

// decode drains the reader into a Buffer.
func decode(dec aiffReader, bitDepth int) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, readChunk*format.NumChannels),
		Format: format,
	}

	var samples []int
	for {
		n, err := dec.PCMBuffer(intBuf)
		samples = append(samples, intBuf.Data[:n]...)

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
	}

	// AIFF stores 8-bit samples as two's complement bytes.
	if bitDepth == 8 {
		for i, s := range samples {
			samples[i] = int(int8(uint8(s)))
		}
	}

	return &audio.Buffer{
		Samples:    samples,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   bitDepth,
	}, nil
}
