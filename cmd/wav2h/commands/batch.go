// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/ik5/wav2h"
	"github.com/ik5/wav2h/internal/manifest"
	"github.com/spf13/cobra"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Convert every job listed in a YAML manifest",
	Long: `Convert every job listed in a YAML manifest.

A failing job does not stop the batch. The command exits non-zero when
any job failed.

Manifest example:
  defaults:
    max_duration: 2
    bit_depth: 8
  output_dir: include
  jobs:
    - input: samples/kick.wav
    - input: samples/snare.wav
      name: snare_main`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parallel conversions (default: manifest value or 1)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	workers := m.Workers
	if cmd.Flags().Changed("workers") {
		workers = batchWorkers
	}

	report := wav2h.ConvertAll(cmd.Context(), m.Jobs(), workers, newLogger(cmd))

	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", res.Job.Input, res.Err)
			continue
		}
		fmt.Fprintf(out, "ok   %s -> %s\n", res.Job.Input, res.Output)
	}
	fmt.Fprintf(out, "%d converted, %d failed\n", report.Succeeded(), report.Failed())

	if !report.OK() {
		return fmt.Errorf("%d of %d conversions failed", report.Failed(), len(report.Results))
	}
	return nil
}
