// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/ik5/wav2h/header"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <header.h>...",
	Short: "Check that generated headers are consistent",
	Long: `Check that generated headers are consistent.

Each header is parsed back and its length constant is compared with the
number of array elements.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		if err := verifyFile(path); err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d headers failed verification", failed, len(args))
	}
	return nil
}

func verifyFile(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	p, err := header.Parse(text)
	if err != nil {
		return err
	}

	return p.Check()
}
