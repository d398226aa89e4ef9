// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/ik5/wav2h"
	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/header"
	"github.com/spf13/cobra"
)

var (
	convertOutput      string
	convertMaxDuration float64
	convertRate        int
	convertBits        int
	convertName        string
	convertLayout      string
	convertInterp      string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert one audio file into a C header",
	Long: `Convert one audio file into a C header.

The header is written to the input path with a .h extension unless
--output is given. Symbols are named after the input file unless --name
is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	defaults := wav2h.DefaultConfig()

	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "header path (default: input with .h extension)")
	convertCmd.Flags().Float64Var(&convertMaxDuration, "max-duration", defaults.MaxDuration, "maximum duration in seconds, 0 keeps everything")
	convertCmd.Flags().IntVar(&convertRate, "rate", defaults.TargetSampleRate, "target sample rate in Hz")
	convertCmd.Flags().IntVar(&convertBits, "bits", defaults.TargetBitDepth, "target bit depth (8 or 16)")
	convertCmd.Flags().StringVar(&convertName, "name", "", "C symbol prefix (default: derived from the input name)")
	convertCmd.Flags().StringVar(&convertLayout, "layout", string(header.LayoutPCM), "header layout (pcm or wav)")
	convertCmd.Flags().StringVar(&convertInterp, "interp", string(audio.Linear), "resampling interpolation (linear or cubic)")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	job := wav2h.Job{
		Input:  args[0],
		Output: convertOutput,
		Config: wav2h.Config{
			MaxDuration:      convertMaxDuration,
			TargetSampleRate: convertRate,
			TargetBitDepth:   convertBits,
			Name:             convertName,
			Layout:           header.Layout(convertLayout),
			Interpolation:    audio.Interpolation(convertInterp),
		},
	}

	res := wav2h.ConvertFile(cmd.Context(), job, newLogger(cmd))
	if res.Err != nil {
		return res.Err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d samples, %d Hz, %d-bit)\n",
		job.Input, res.Output, res.Final.Frames, res.Final.SampleRate, res.Final.BitDepth)
	return nil
}
