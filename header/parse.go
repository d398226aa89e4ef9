// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parsed is the data read back from an emitted header.
type Parsed struct {
	Name       string
	Layout     Layout
	ElemType   string
	Values     []int
	Length     int
	SampleRate int
}

var (
	arrayRe  = regexp.MustCompile(`const\s+(\w+)\s+(\w+?)_(data|wav)\[\]\s+PROGMEM\s*=\s*\{([^}]*)\};`)
	lengthRe = regexp.MustCompile(`const\s+\w+\s+(\w+?)_(length|wav_size)\s*=\s*(\d+);`)
	rateRe   = regexp.MustCompile(`const\s+\w+\s+(\w+?)_sample_rate\s*=\s*(\d+);`)
)

// Parse reads the array literal and scalar constants of a header
// produced by Encode.
func Parse(text []byte) (*Parsed, error) {
	m := arrayRe.FindSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: no array declaration", ErrMalformedHeader)
	}

	p := &Parsed{
		ElemType: string(m[1]),
		Name:     string(m[2]),
		Layout:   LayoutPCM,
	}
	if string(m[3]) == "wav" {
		p.Layout = LayoutWAV
	}

	for field := range strings.FieldsFuncSeq(string(m[4]), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	}) {
		v, err := strconv.ParseInt(field, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrMalformedHeader, len(p.Values), err)
		}
		p.Values = append(p.Values, int(v))
	}

	l := lengthRe.FindSubmatch(text)
	if l == nil || string(l[1]) != p.Name {
		return nil, fmt.Errorf("%w: no length constant for %s", ErrMalformedHeader, p.Name)
	}
	p.Length, _ = strconv.Atoi(string(l[3]))

	if r := rateRe.FindSubmatch(text); r != nil && string(r[1]) == p.Name {
		p.SampleRate, _ = strconv.Atoi(string(r[2]))
	}

	return p, nil
}

// Check reports whether the length constant matches the array.
func (p *Parsed) Check() error {
	if p.Length != len(p.Values) {
		return fmt.Errorf("%w: %s declares %d elements, array holds %d",
			ErrMalformedHeader, p.Name, p.Length, len(p.Values))
	}
	return nil
}
