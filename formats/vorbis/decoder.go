// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/utils"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

const readChunk = 4096 // values per read

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return decode(dec)
}

// decode drains the reader and quantises the float samples to 16 bit.
func decode(dec oggReader) (*audio.Buffer, error) {
	channels := dec.Channels()
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d", audio.ErrUnsupportedChannels, channels)
	}

	// Read returns interleaved values, keep the chunk frame aligned
	raw := make([]float32, readChunk-readChunk%channels)

	var samples []int
	for {
		n, err := dec.Read(raw)
		for _, v := range raw[:n] {
			samples = append(samples, utils.Float32ToPCM16(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptStream, err)
		}
		if n == 0 {
			break
		}
	}

	samples = samples[:len(samples)-len(samples)%channels]

	return &audio.Buffer{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
		Channels:   channels,
		BitDepth:   16,
	}, nil
}
