// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/formats/wav"
	"github.com/ik5/wav2h/header"
	"github.com/ik5/wav2h/internal/audiotest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFixture(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestConvert_EightBitEndToEnd(t *testing.T) {
	t.Parallel()

	// raw unsigned 8-bit WAV bytes
	input := audiotest.WAV(8000, 1, 8, []int{0, 128, 255, 64})

	tests := []struct {
		bits int
		want []int
	}{
		{bits: 16, want: []int{-32768, 0, 32512, -16384}},
		{bits: 8, want: []int{-128, 0, 127, -64}},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.TargetSampleRate = 8000
		cfg.TargetBitDepth = tt.bits

		buf, err := Convert(bytes.NewReader(input), wav.Decoder{}, cfg, discardLogger())
		if err != nil {
			t.Fatalf("Convert(%d-bit) error = %v", tt.bits, err)
		}
		if !slices.Equal(buf.Samples, tt.want) {
			t.Errorf("Convert(%d-bit) = %v, want %v", tt.bits, buf.Samples, tt.want)
		}
		if buf.BitDepth != tt.bits || buf.Channels != 1 || buf.SampleRate != 8000 {
			t.Errorf("Convert(%d-bit) format = %d/%d/%d", tt.bits, buf.SampleRate, buf.Channels, buf.BitDepth)
		}
	}
}

func TestConvert_OddEightBitLength(t *testing.T) {
	t.Parallel()

	// three data bytes, so the chunk carries a RIFF pad byte
	input := audiotest.WAV(8000, 1, 8, []int{0, 128, 255})

	cfg := DefaultConfig()
	cfg.TargetSampleRate = 8000
	cfg.TargetBitDepth = 8

	buf, err := Convert(bytes.NewReader(input), wav.Decoder{}, cfg, discardLogger())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if want := []int{-128, 0, 127}; !slices.Equal(buf.Samples, want) {
		t.Errorf("Samples = %v, want %v", buf.Samples, want)
	}

	out, err := header.Render(buf, header.Options{Name: "odd"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	p, err := header.Parse(out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Length != 3 || len(p.Values) != 3 {
		t.Errorf("length = %d, values = %v, want 3 elements", p.Length, p.Values)
	}
}

func TestConvert_StereoDownsample(t *testing.T) {
	t.Parallel()

	left := audiotest.Sine(4410, 44100, 440, 20000)
	input := audiotest.WAV(44100, 2, 16, audiotest.Interleave(left, left))

	buf, err := Convert(bytes.NewReader(input), wav.Decoder{}, DefaultConfig(), discardLogger())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	want := audio.ResampledLength(len(left), 44100, 16000)
	if len(buf.Samples) != want {
		t.Errorf("len(Samples) = %d, want %d", len(buf.Samples), want)
	}
	if buf.Samples[0] != left[0] || buf.Samples[len(buf.Samples)-1] != left[len(left)-1] {
		t.Errorf("endpoints = %d..%d, want %d..%d",
			buf.Samples[0], buf.Samples[len(buf.Samples)-1], left[0], left[len(left)-1])
	}
}

func TestConvert_WideDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		in   []int
		want []int
	}{
		{bits: 24, in: []int{1 << 22, -(1 << 23), 256}, want: []int{16384, -32768, 1}},
		{bits: 32, in: []int{1 << 30, -(1 << 31), 65536}, want: []int{16384, -32768, 1}},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.TargetSampleRate = 8000

		input := audiotest.WAV(8000, 1, tt.bits, tt.in)
		buf, err := Convert(bytes.NewReader(input), wav.Decoder{}, cfg, discardLogger())
		if err != nil {
			t.Fatalf("Convert(%d-bit) error = %v", tt.bits, err)
		}
		if !slices.Equal(buf.Samples, tt.want) {
			t.Errorf("Convert(%d-bit) = %v, want %v", tt.bits, buf.Samples, tt.want)
		}
	}
}

func TestConvert_TruncationLogged(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	cfg := DefaultConfig()
	cfg.TargetSampleRate = 8000
	cfg.MaxDuration = 0.5

	input := audiotest.WAV(8000, 1, 16, make([]int, 8000))
	buf, err := Convert(bytes.NewReader(input), wav.Decoder{}, cfg, logger)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	if len(buf.Samples) != 4000 {
		t.Errorf("len(Samples) = %d, want 4000", len(buf.Samples))
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "audio truncated") {
		t.Errorf("truncation warning not logged:\n%s", logs.String())
	}
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		cfg     func(*Config)
		wantErr error
	}{
		{name: "not a wav", input: []byte("garbage"), wantErr: audio.ErrMalformedContainer},
		{name: "float wav", input: audiotest.WAVWithFormat(audiotest.FormatFloat, 8000, 1, 32, make([]byte, 8)), wantErr: audio.ErrUnsupportedFormat},
		{name: "12-bit", input: audiotest.WAV(8000, 1, 12, []int{1, 2}), wantErr: audio.ErrUnsupportedFormat},
		{name: "bad config", input: audiotest.WAV(8000, 1, 16, []int{1}), cfg: func(c *Config) { c.TargetBitDepth = 12 }, wantErr: ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}

			_, err := Convert(bytes.NewReader(tt.input), wav.Decoder{}, cfg, discardLogger())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConvertFile_WritesHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFixture(t, dir, "Kick Drum.wav", audiotest.WAV(8000, 1, 8, []int{0, 128, 255, 64}))

	cfg := DefaultConfig()
	cfg.TargetSampleRate = 8000
	cfg.TargetBitDepth = 8

	res := ConvertFile(context.Background(), Job{Input: input, Config: cfg}, discardLogger())
	if res.Err != nil {
		t.Fatalf("ConvertFile() error = %v", res.Err)
	}

	if want := filepath.Join(dir, "Kick Drum.h"); res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
	if res.Original.BitDepth != 8 || res.Final.Frames != 4 || res.Truncated {
		t.Errorf("Result = %+v", res)
	}

	text, err := os.ReadFile(res.Output)
	if err != nil {
		t.Fatalf("reading header: %v", err)
	}

	p, err := header.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Name != "kick_drum" || p.ElemType != "int8_t" || p.SampleRate != 8000 {
		t.Errorf("Parse() = %+v", p)
	}
	if want := []int{-128, 0, 127, -64}; !slices.Equal(p.Values, want) || p.Length != 4 {
		t.Errorf("Values = %v (length %d), want %v", p.Values, p.Length, want)
	}
	if !strings.Contains(string(text), "#ifndef KICK_DRUM_H") {
		t.Error("include guard missing")
	}
}

func TestConvertFile_ExplicitOutputAndLayout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFixture(t, dir, "blip.wav", audiotest.WAV(16000, 1, 16, []int{100, -100, 200}))
	output := filepath.Join(dir, "out.h")

	cfg := DefaultConfig()
	cfg.Name = "sfx_blip"
	cfg.Layout = header.LayoutWAV

	res := ConvertFile(context.Background(), Job{Input: input, Output: output, Config: cfg}, discardLogger())
	if res.Err != nil {
		t.Fatalf("ConvertFile() error = %v", res.Err)
	}

	text, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading header: %v", err)
	}

	p, err := header.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Name != "sfx_blip" || p.Layout != header.LayoutWAV || p.Length != wav.HeaderSize+6 {
		t.Errorf("Parse() = %s %s %d", p.Name, p.Layout, p.Length)
	}
}

func TestConvertFile_Failures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unsupported := writeFixture(t, dir, "loop.flac", []byte("fLaC"))
	malformed := writeFixture(t, dir, "broken.wav", []byte("RIFF...."))

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "missing", input: filepath.Join(dir, "nope.wav"), wantErr: ErrFileNotFound},
		{name: "unknown extension", input: unsupported, wantErr: audio.ErrUnsupportedFormat},
		{name: "malformed", input: malformed, wantErr: audio.ErrMalformedContainer},
	}

	for _, tt := range tests {
		res := ConvertFile(context.Background(), Job{Input: tt.input, Config: DefaultConfig()}, discardLogger())
		if !errors.Is(res.Err, tt.wantErr) {
			t.Errorf("%s: error = %v, want %v", tt.name, res.Err, tt.wantErr)
		}
		if _, err := os.Stat(res.Output); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: output %s exists after failure", tt.name, res.Output)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestConvertFile_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := ConvertFile(ctx, Job{Input: "any.wav", Config: DefaultConfig()}, discardLogger())
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", res.Err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "mp3", "ogg", "wav", "wave"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestJob_OutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		job  Job
		want string
	}{
		{job: Job{Input: "a/b/kick.wav"}, want: "a/b/kick.h"},
		{job: Job{Input: "kick"}, want: "kick.h"},
		{job: Job{Input: "kick.wav", Output: "inc/kick_sample.h"}, want: "inc/kick_sample.h"},
	}

	for _, tt := range tests {
		if got := tt.job.OutputPath(); got != tt.want {
			t.Errorf("OutputPath(%+v) = %q, want %q", tt.job, got, tt.want)
		}
	}
}
