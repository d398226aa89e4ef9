// SPDX-License-Identifier: EPL-2.0

package wav2h

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/formats/aiff"
	"github.com/ik5/wav2h/formats/mp3"
	"github.com/ik5/wav2h/formats/vorbis"
	"github.com/ik5/wav2h/formats/wav"
	"github.com/ik5/wav2h/header"
)

// Job is one input file and where its header goes.
type Job struct {
	Input string

	// Output defaults to Input with a .h extension.
	Output string

	Config Config
}

// OutputPath returns the header path for the job.
func (j Job) OutputPath() string {
	if j.Output != "" {
		return j.Output
	}
	return strings.TrimSuffix(j.Input, filepath.Ext(j.Input)) + ".h"
}

// Result is the outcome of one Job.
type Result struct {
	Job    Job
	Output string

	// Original describes the decoded input, Final the emitted data.
	Original  audio.Info
	Final     audio.Info
	Truncated bool

	Err error
}

// DefaultRegistry returns a registry holding every bundled decoder, keyed
// by file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// Converter runs conversions against a set of decoders.
type Converter struct {
	Registry *audio.Registry
	Logger   *slog.Logger
}

// NewConverter returns a Converter using DefaultRegistry. A nil logger
// means slog.Default().
func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{Registry: DefaultRegistry(), Logger: logger}
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Convert decodes src and runs the sample pipeline:
//
//	truncate -> 16-bit -> mono -> resample -> target depth
//
// The returned buffer is mono at cfg.TargetSampleRate and
// cfg.TargetBitDepth.
func Convert(src io.Reader, dec audio.Decoder, cfg Config, logger *slog.Logger) (*audio.Buffer, error) {
	c := &Converter{Logger: logger}
	buf, _, err := c.convert(src, dec, cfg)
	return buf, err
}

type stats struct {
	original  audio.Info
	truncated bool
}

func (c *Converter) convert(src io.Reader, dec audio.Decoder, cfg Config) (*audio.Buffer, stats, error) {
	var st stats
	log := c.logger()

	if err := cfg.Validate(); err != nil {
		return nil, st, err
	}
	log.Debug("pipeline",
		"max_duration", cfg.MaxDuration,
		"target_rate", cfg.TargetSampleRate,
		"target_bits", cfg.TargetBitDepth,
		"interpolation", cfg.Interpolation,
	)

	buf, err := dec.Decode(src)
	if err != nil {
		return nil, st, fmt.Errorf("decoding: %w", err)
	}
	if err := buf.Validate(); err != nil {
		return nil, st, fmt.Errorf("decoding: %w", err)
	}

	st.original = buf.Info()
	log.Info("decoded",
		"sample_rate", buf.SampleRate,
		"channels", buf.Channels,
		"bit_depth", buf.BitDepth,
		"frames", buf.Frames(),
		"duration", buf.Duration(),
	)

	if buf.Truncate(cfg.MaxDuration) {
		st.truncated = true
		log.Warn("audio truncated",
			"max_duration", cfg.MaxDuration,
			"original_frames", st.original.Frames,
			"kept_frames", buf.Frames(),
		)
	}

	if err := audio.ToPCM16(buf); err != nil {
		return nil, st, fmt.Errorf("requantizing: %w", err)
	}

	if err := audio.MixToMono(buf); err != nil {
		return nil, st, fmt.Errorf("mixing: %w", err)
	}

	method, _ := audio.ParseInterpolation(string(cfg.Interpolation))
	if err := audio.Resample(buf, cfg.TargetSampleRate, method); err != nil {
		return nil, st, fmt.Errorf("resampling: %w", err)
	}

	if err := audio.Requantize(buf, cfg.TargetBitDepth); err != nil {
		return nil, st, fmt.Errorf("requantizing: %w", err)
	}

	log.Info("processed",
		"sample_rate", buf.SampleRate,
		"channels", buf.Channels,
		"bit_depth", buf.BitDepth,
		"samples", len(buf.Samples),
		"duration", buf.Duration(),
	)

	return buf, st, nil
}

// ConvertFile converts one file with a default Converter.
func ConvertFile(ctx context.Context, job Job, logger *slog.Logger) Result {
	return NewConverter(logger).ConvertFile(ctx, job)
}

// ConvertFile reads job.Input, converts it and writes the header. The
// header is written to a temporary file next to the output and renamed
// into place, so a failed run never leaves a partial header behind.
func (c *Converter) ConvertFile(ctx context.Context, job Job) Result {
	res := Result{Job: job, Output: job.OutputPath()}
	log := c.logger().With("input", job.Input)

	fail := func(err error) Result {
		res.Err = err
		log.Error("conversion failed", "error", err)
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	f, err := os.Open(job.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fail(fmt.Errorf("%w: %s", ErrFileNotFound, job.Input))
		}
		return fail(fmt.Errorf("opening input: %w", err))
	}
	defer f.Close()

	ext := strings.TrimPrefix(filepath.Ext(job.Input), ".")
	dec, ok := c.registry().Get(ext)
	if !ok {
		return fail(fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext))
	}
	log.Debug("decoder selected", "format", strings.ToLower(ext), "output", res.Output)

	conv := &Converter{Registry: c.Registry, Logger: log}
	buf, st, err := conv.convert(f, dec, job.Config)
	res.Original, res.Truncated = st.original, st.truncated
	if err != nil {
		return fail(err)
	}
	res.Final = buf.Info()

	data, err := header.Render(buf, header.Options{
		Name:   job.Config.Name,
		Source: job.Input,
		Layout: job.Config.Layout,
	})
	if err != nil {
		return fail(fmt.Errorf("encoding header: %w", err))
	}

	if err := writeFileAtomic(res.Output, data); err != nil {
		return fail(err)
	}

	log.Info("header written", "output", res.Output, "bytes", len(data))
	return res
}

var defaultRegistry = DefaultRegistry()

func (c *Converter) registry() *audio.Registry {
	if c.Registry == nil {
		return defaultRegistry
	}
	return c.Registry
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".wav2h-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("writing header: %w", err))
	}
	if err := tmp.Chmod(0o644); err != nil {
		return cleanup(fmt.Errorf("writing header: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing header: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing header: %w", err)
	}

	return nil
}
