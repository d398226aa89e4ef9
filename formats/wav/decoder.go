// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/wav2h/audio"
)

// WAVE format tags accepted by the decoder.
const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder reads RIFF/WAVE files holding 8, 16, 24 or 32-bit integer PCM.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	// a failed scan leaves the container checks to go-audio
	chunks, _ := scanChunks(rs)

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w (format tag %d)", ErrNotPCM, dec.WavAudioFormat)
	}
	if dec.WavAudioFormat == formatExtensible && chunks.subFormat != formatPCM {
		return nil, fmt.Errorf("%w (extensible sub-format %d)", ErrNotPCM, chunks.subFormat)
	}

	bitDepth := int(dec.BitDepth)
	if !audio.SupportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w, got %d", ErrUnsupportedDepth, bitDepth)
	}

	channels := int(dec.NumChans)
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d", audio.ErrUnsupportedChannels, channels)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingPCMData, err)
	}

	if pcm != nil {
		pcm.Data = trimPad(pcm.Data, chunks.dataSize, bitDepth)
	}

	return toBuffer(pcm, int(dec.SampleRate), channels, bitDepth)
}
