// SPDX-License-Identifier: EPL-2.0

// Package wav2h converts audio files into C headers that embed the
// samples for playback on microcontrollers.
//
// Each file goes through the same fixed pipeline:
//
//	decode -> truncate -> 16-bit -> mono -> resample -> 8 or 16-bit -> header
//
// # Supported Formats
//
// Inputs are selected by file extension through an audio.Registry:
//   - WAV (8, 16, 24 and 32-bit integer PCM) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// # Quick Start
//
// Convert a single file with the defaults (5 s, 16 kHz, 16-bit):
//
//	res := wav2h.ConvertFile(ctx, wav2h.Job{
//	    Input:  "sounds/kick.wav",
//	    Config: wav2h.DefaultConfig(),
//	}, nil)
//	if res.Err != nil {
//	    // errors.Is(res.Err, wav2h.ErrFileNotFound), audio.ErrUnsupportedFormat, ...
//	}
//
// The header lands next to the input as sounds/kick.h and declares
// kick_data, kick_length and kick_sample_rate.
//
// # In-memory Conversion
//
// Convert runs the pipeline on any reader and returns the final buffer,
// ready for header.Encode:
//
//	buf, err := wav2h.Convert(r, wav.Decoder{}, cfg, logger)
//
// # Batches
//
// ConvertAll runs many jobs on a bounded pool of workers. A failing file
// is logged and recorded in the Report, the rest of the batch continues,
// and results keep the order of the jobs:
//
//	report := wav2h.ConvertAll(ctx, jobs, 4, logger)
//	if !report.OK() {
//	    os.Exit(1)
//	}
//
// # Logging
//
// Progress goes through log/slog: decoded and processed properties at
// Info, truncation at Warn and failures at Error. A nil *slog.Logger
// means slog.Default().
package wav2h
