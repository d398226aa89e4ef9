// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/ik5/wav2h"
	"github.com/ik5/wav2h/audio"
	"github.com/spf13/cobra"
)

var infoFormat string

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Print the properties of an audio file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVarP(&infoFormat, "format", "f", "yaml", "output format (yaml or json)")

	rootCmd.AddCommand(infoCmd)
}

type fileInfo struct {
	File       string  `json:"file" yaml:"file"`
	Format     string  `json:"format" yaml:"format"`
	SampleRate int     `json:"sample_rate" yaml:"sample_rate"`
	Channels   int     `json:"channels" yaml:"channels"`
	BitDepth   int     `json:"bit_depth" yaml:"bit_depth"`
	Frames     int     `json:"frames" yaml:"frames"`
	Seconds    float64 `json:"seconds" yaml:"seconds"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := wav2h.DefaultRegistry().Get(ext)
	if !ok {
		return fmt.Errorf("%w: %q", wav2h.ErrUnsupportedExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return writeInfo(cmd, describe(path, ext, buf))
}

func describe(path, ext string, buf *audio.Buffer) fileInfo {
	return fileInfo{
		File:       path,
		Format:     ext,
		SampleRate: buf.SampleRate,
		Channels:   buf.Channels,
		BitDepth:   buf.BitDepth,
		Frames:     buf.Frames(),
		Seconds:    buf.Seconds(),
	}
}

func writeInfo(cmd *cobra.Command, info fileInfo) error {
	w := cmd.OutOrStdout()

	switch infoFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml", "":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", infoFormat)
	}
}
