// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wav2h",
	Short: "Convert audio files into C headers for microcontrollers",
	Long: `wav2h - embed audio samples in C headers.

Every input is decoded, truncated to a maximum duration, mixed to mono,
resampled and requantized to 8 or 16-bit before being written as a
PROGMEM array with length and sample rate constants.

Supported inputs: WAV (8/16/24/32-bit PCM), AIFF, MP3, Ogg Vorbis.

Examples:
  # 16 kHz 16-bit header next to the input (kick.h)
  wav2h convert kick.wav

  # 8-bit samples for a Mozzi table
  wav2h convert kick.wav --bits 8 --rate 16384 -o include/kick.h

  # Embed a complete WAV file instead of bare samples
  wav2h convert voice.wav --layout wav

  # Convert a list of files
  wav2h batch sounds.yaml --workers 4`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger writes text logs to the command's stderr.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}
