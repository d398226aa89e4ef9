// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/wav2h/formats/wav"
)

// Example_roundTrip writes an 8-bit WAV and decodes it again.
func Example_roundTrip() {
	var file bytes.Buffer
	if err := wav.WritePCM(&file, 8000, 8, []int{-128, 0, 127, -64}); err != nil {
		fmt.Println("write error:", err)
		return
	}

	buf, err := wav.Decoder{}.Decode(bytes.NewReader(file.Bytes()))
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	fmt.Printf("%d bytes, %d Hz, %d-bit, samples %v\n", file.Len(), buf.SampleRate, buf.BitDepth, buf.Samples)
	// Output: 48 bytes, 8000 Hz, 8-bit, samples [-128 0 127 -64]
}
