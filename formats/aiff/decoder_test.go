// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wav2h/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	maxPerRead   int
	returnErrors bool
	nilFormat    bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	if m.nilFormat {
		return nil
	}
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf.Data), len(m.samples)-m.offset)
	if m.maxPerRead > 0 {
		n = min(n, m.maxPerRead)
	}

	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not AIFF data")))
	if !errors.Is(err, audio.ErrMalformedContainer) {
		t.Errorf("Decode() error = %v, want ErrMalformedContainer", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecode_CollectsAllReads(t *testing.T) {
	t.Parallel()

	want := make([]int, 10000)
	for i := range want {
		want[i] = i%65536 - 32768
	}

	reader := &mockAiffReader{sampleRate: 22050, channels: 2, samples: want, maxPerRead: 999}
	buf, err := decode(reader, 16)
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}

	if buf.SampleRate != 22050 || buf.Channels != 2 || buf.BitDepth != 16 {
		t.Errorf("format = %d/%d/%d, want 22050/2/16", buf.SampleRate, buf.Channels, buf.BitDepth)
	}
	if !slices.Equal(buf.Samples, want) {
		t.Errorf("got %d samples, want %d identical samples", len(buf.Samples), len(want))
	}
}

func TestDecode_EightBitIsSigned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []int
	}{
		{name: "raw bytes", in: []int{0x80, 0x00, 0x7F, 0xC0}},
		{name: "already signed", in: []int{-128, 0, 127, -64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := &mockAiffReader{sampleRate: 8000, channels: 1, samples: tt.in}
			buf, err := decode(reader, 8)
			if err != nil {
				t.Fatalf("decode() error = %v", err)
			}
			if want := []int{-128, 0, 127, -64}; !slices.Equal(buf.Samples, want) {
				t.Errorf("Samples = %v, want %v", buf.Samples, want)
			}
		})
	}
}

func TestDecode_ReadError(t *testing.T) {
	t.Parallel()

	reader := &mockAiffReader{sampleRate: 8000, channels: 1, samples: []int{1}, returnErrors: true}
	if _, err := decode(reader, 16); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decode() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecode_MissingFormat(t *testing.T) {
	t.Parallel()

	reader := &mockAiffReader{nilFormat: true}
	if _, err := decode(reader, 16); !errors.Is(err, ErrUnsupportedAiffLayout) {
		t.Errorf("decode() error = %v, want ErrUnsupportedAiffLayout", err)
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	reader := &mockAiffReader{sampleRate: 8000, channels: 1}
	buf, err := decode(reader, 16)
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	if len(buf.Samples) != 0 {
		t.Errorf("len(Samples) = %d, want 0", len(buf.Samples))
	}
}

func TestErrors_Classification(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrNotAiffFile, audio.ErrMalformedContainer) {
		t.Error("ErrNotAiffFile does not wrap audio.ErrMalformedContainer")
	}
	if !errors.Is(ErrUnsupportedAiffLayout, audio.ErrMalformedContainer) {
		t.Error("ErrUnsupportedAiffLayout does not wrap audio.ErrMalformedContainer")
	}
	if !errors.Is(ErrUnsupportedDepth, audio.ErrUnsupportedFormat) {
		t.Error("ErrUnsupportedDepth does not wrap audio.ErrUnsupportedFormat")
	}
}
