// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MixToMono folds a stereo buffer into mono in place by averaging each
// frame with truncating integer division. A trailing sample without a
// partner is dropped. Mono buffers pass through untouched.
func MixToMono(b *Buffer) error {
	switch b.Channels {
	case 1:
		return nil
	case 2:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, b.Channels)
	}

	frames := len(b.Samples) / 2
	for f := range frames {
		idx := f << 1 // f * 2
		b.Samples[f] = (b.Samples[idx] + b.Samples[idx+1]) / 2
	}

	b.Samples = b.Samples[:frames]
	b.Channels = 1

	return nil
}
