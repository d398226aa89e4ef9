// SPDX-License-Identifier: EPL-2.0

package header

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ik5/wav2h/audio"
	"github.com/ik5/wav2h/formats/wav"
)

// Options controls the emitted header.
type Options struct {
	// Name is the symbol prefix. Empty derives it from Source.
	Name string

	// Source is the input file recorded in the provenance comment.
	Source string

	// Layout defaults to LayoutPCM.
	Layout Layout
}

// Render returns the header text for buf.
func Render(buf *audio.Buffer, opts Options) ([]byte, error) {
	var out bytes.Buffer
	if err := Encode(&out, buf, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Encode writes a C header holding buf's samples to w. buf must be mono
// and 8 or 16-bit. The output only depends on buf and opts.
func Encode(w io.Writer, buf *audio.Buffer, opts Options) error {
	if buf == nil || len(buf.Samples) == 0 {
		return ErrEmptyBuffer
	}
	if buf.Channels != 1 {
		return fmt.Errorf("%w: %d channels", ErrNotMono, buf.Channels)
	}
	if buf.BitDepth != 8 && buf.BitDepth != 16 {
		return fmt.Errorf("%w: got %d", ErrUnsupportedDepth, buf.BitDepth)
	}
	if buf.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, buf.SampleRate)
	}

	layout, err := ParseLayout(string(opts.Layout))
	if err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name = Identifier(opts.Source)
	}
	if !ValidIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	bw := bufio.NewWriter(w)
	guard := Guard(name)

	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", guard, guard)
	bw.WriteString("#include <Arduino.h>\n\n")
	writeProvenance(bw, buf, opts.Source)

	switch layout {
	case LayoutWAV:
		var image bytes.Buffer
		if err := wav.WritePCM(&image, buf.SampleRate, buf.BitDepth, buf.Samples); err != nil {
			return fmt.Errorf("building wav image: %w", err)
		}

		fmt.Fprintf(bw, "const uint8_t %s_wav[] PROGMEM = {\n", name)
		writeArray(bw, image.Len(), layout.perLine(), func(i int) string {
			return fmt.Sprintf("0x%02X", image.Bytes()[i])
		})
		bw.WriteString("};\n\n")
		fmt.Fprintf(bw, "const uint32_t %s_wav_size = %d;\n", name, image.Len())
	default:
		elem, format := "int16_t", "%6d"
		if buf.BitDepth == 8 {
			elem, format = "int8_t", "%4d"
		}

		fmt.Fprintf(bw, "const %s %s_data[] PROGMEM = {\n", elem, name)
		writeArray(bw, len(buf.Samples), layout.perLine(), func(i int) string {
			return fmt.Sprintf(format, buf.Samples[i])
		})
		bw.WriteString("};\n\n")
		fmt.Fprintf(bw, "const uint32_t %s_length = %d;\n", name, len(buf.Samples))
	}

	fmt.Fprintf(bw, "const uint32_t %s_sample_rate = %d;\n\n", name, buf.SampleRate)
	fmt.Fprintf(bw, "#endif // %s\n", guard)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

func writeProvenance(bw *bufio.Writer, buf *audio.Buffer, source string) {
	if source != "" {
		fmt.Fprintf(bw, "// Source: %s\n", filepath.Base(source))
	}
	fmt.Fprintf(bw, "// Sample rate: %d Hz\n", buf.SampleRate)
	fmt.Fprintf(bw, "// Duration: %.2f s\n", buf.Seconds())
	fmt.Fprintf(bw, "// Bit depth: %d\n", buf.BitDepth)
	fmt.Fprintf(bw, "// Samples: %d\n\n", len(buf.Samples))
}

// writeArray writes n comma separated elements, perLine to a row, without
// a trailing comma.
func writeArray(bw *bufio.Writer, n, perLine int, elem func(int) string) {
	for i := range n {
		switch {
		case i == 0:
			bw.WriteString("    ")
		case i%perLine == 0:
			bw.WriteString(",\n    ")
		default:
			bw.WriteString(", ")
		}
		bw.WriteString(elem(i))
	}
	bw.WriteByte('\n')
}
