// SPDX-License-Identifier: EPL-2.0

// Package manifest loads batch job lists for the wav2h batch command.
//
// A manifest is a YAML document:
//
//	defaults:
//	  max_duration: 2.5
//	  sample_rate: 16000
//	  bit_depth: 8
//	output_dir: include/sounds
//	workers: 4
//	jobs:
//	  - input: samples/kick.wav
//	  - input: samples/snare.wav
//	    name: snare_main
//	    bit_depth: 16
//
// Fields left out of defaults take wav2h.DefaultConfig values. Every job
// may override any default. Relative paths are resolved against the
// directory holding the manifest.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wav2h"
	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/header"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is returned for manifests that parse but cannot run.
var ErrInvalidManifest = errors.New("invalid manifest")

// Settings are the conversion parameters shared by defaults and jobs.
// Nil and empty fields inherit.
type Settings struct {
	MaxDuration   *float64 `yaml:"max_duration,omitempty"`
	SampleRate    *int     `yaml:"sample_rate,omitempty"`
	BitDepth      *int     `yaml:"bit_depth,omitempty"`
	Layout        string   `yaml:"layout,omitempty"`
	Interpolation string   `yaml:"interpolation,omitempty"`
}

// Entry is one job of the manifest.
type Entry struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"`
	Name   string `yaml:"name,omitempty"`

	Settings `yaml:",inline"`
}

type Manifest struct {
	Defaults  Settings `yaml:"defaults"`
	OutputDir string   `yaml:"output_dir,omitempty"`
	Workers   int      `yaml:"workers,omitempty"`
	Entries   []Entry  `yaml:"jobs"`

	// dir is the base for relative paths
	dir string
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return m, nil
}

// Parse decodes a manifest whose relative paths are based on dir.
func Parse(data []byte, dir string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	m.dir = dir

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}

	return &m, nil
}

func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return fmt.Errorf("%w: no jobs", ErrInvalidManifest)
	}

	if m.Workers < 0 {
		return fmt.Errorf("%w: workers must be at least 0, got %d", ErrInvalidManifest, m.Workers)
	}

	outputs := make(map[string]int, len(m.Entries))
	for i, job := range m.Jobs() {
		if strings.TrimSpace(m.Entries[i].Input) == "" {
			return fmt.Errorf("%w: job %d: input cannot be empty", ErrInvalidManifest, i)
		}

		if err := job.Config.Validate(); err != nil {
			return fmt.Errorf("job %d (%s): %w", i, m.Entries[i].Input, err)
		}

		out := job.OutputPath()
		if prev, ok := outputs[out]; ok {
			return fmt.Errorf("%w: jobs %d and %d both write %s", ErrInvalidManifest, prev, i, out)
		}
		outputs[out] = i
	}

	return nil
}

// Jobs expands the entries into converter jobs.
func (m *Manifest) Jobs() []wav2h.Job {
	base := wav2h.DefaultConfig()
	m.Defaults.apply(&base)

	jobs := make([]wav2h.Job, 0, len(m.Entries))
	for _, e := range m.Entries {
		cfg := base
		e.Settings.apply(&cfg)
		cfg.Name = e.Name

		input := m.resolve(e.Input)

		output := ""
		switch {
		case e.Output != "":
			output = m.resolve(e.Output)
		case m.OutputDir != "":
			stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			output = filepath.Join(m.resolve(m.OutputDir), stem+".h")
		}

		jobs = append(jobs, wav2h.Job{Input: input, Output: output, Config: cfg})
	}

	return jobs
}

func (m *Manifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}

func (s Settings) apply(cfg *wav2h.Config) {
	if s.MaxDuration != nil {
		cfg.MaxDuration = *s.MaxDuration
	}
	if s.SampleRate != nil {
		cfg.TargetSampleRate = *s.SampleRate
	}
	if s.BitDepth != nil {
		cfg.TargetBitDepth = *s.BitDepth
	}
	if s.Layout != "" {
		cfg.Layout = header.Layout(s.Layout)
	}
	if s.Interpolation != "" {
		cfg.Interpolation = audio.Interpolation(s.Interpolation)
	}
}
