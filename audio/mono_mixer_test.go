// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"
)

func TestMixToMono_MonoPassthrough(t *testing.T) {
	t.Parallel()

	// Mono input should pass through unchanged
	buf := &Buffer{Samples: []int{1, -2, 3}, SampleRate: 8000, Channels: 1, BitDepth: 16}

	if err := MixToMono(buf); err != nil {
		t.Fatalf("MixToMono() error = %v", err)
	}
	if !slices.Equal(buf.Samples, []int{1, -2, 3}) {
		t.Errorf("Samples = %v, want [1 -2 3]", buf.Samples)
	}
}

func TestMixToMono_StereoToMono(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{name: "average", in: []int{100, 200, -100, -300}, want: []int{150, -200}},
		{name: "truncates toward zero", in: []int{1, 2, -1, -2, 3, 0}, want: []int{1, -1, 1}},
		{name: "extremes", in: []int{32767, 32767, -32768, -32768, 32767, -32768}, want: []int{32767, -32768, 0}},
		{name: "odd trailing sample dropped", in: []int{10, 20, 30}, want: []int{15}},
		{name: "single sample", in: []int{7}, want: []int{}},
		{name: "empty", in: []int{}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &Buffer{Samples: slices.Clone(tt.in), SampleRate: 44100, Channels: 2, BitDepth: 16}
			if err := MixToMono(buf); err != nil {
				t.Fatalf("MixToMono() error = %v", err)
			}
			if buf.Channels != 1 {
				t.Errorf("Channels = %d, want 1", buf.Channels)
			}
			if buf.SampleRate != 44100 {
				t.Errorf("SampleRate = %d, want 44100", buf.SampleRate)
			}
			if !slices.Equal(buf.Samples, tt.want) {
				t.Errorf("Samples = %v, want %v", buf.Samples, tt.want)
			}
		})
	}
}

// TestMixToMono_IdenticalChannels checks that a stereo signal with the same
// value on both sides mixes to exactly that value.
func TestMixToMono_IdenticalChannels(t *testing.T) {
	t.Parallel()

	var in, want []int
	for v := -32768; v <= 32767; v += 97 {
		in = append(in, v, v)
		want = append(want, v)
	}

	buf := &Buffer{Samples: in, SampleRate: 8000, Channels: 2, BitDepth: 16}
	if err := MixToMono(buf); err != nil {
		t.Fatalf("MixToMono() error = %v", err)
	}
	if !slices.Equal(buf.Samples, want) {
		t.Error("identical channels did not mix to their common value")
	}
}

func TestMixToMono_UnsupportedChannels(t *testing.T) {
	t.Parallel()

	for _, ch := range []int{0, 3, 4, 6} {
		buf := &Buffer{Samples: make([]int, 12), SampleRate: 8000, Channels: ch, BitDepth: 16}
		if err := MixToMono(buf); !errors.Is(err, ErrUnsupportedChannels) {
			t.Errorf("MixToMono(%d channels) error = %v, want ErrUnsupportedChannels", ch, err)
		}
	}
}

func TestMixToMono_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	samples := make([]int, 8192)
	allocs := testing.AllocsPerRun(100, func() {
		buf := Buffer{Samples: samples, SampleRate: 8000, Channels: 2, BitDepth: 16}
		_ = MixToMono(&buf)
	})

	if allocs > 0 {
		t.Errorf("MixToMono allocated %v times, want 0", allocs)
	}
}
