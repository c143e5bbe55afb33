package permute

import "fmt"

// MaxCheckSize bounds the domains Check is willing to enumerate.
const MaxCheckSize = uint64(1) << 28

// Check enumerates the whole domain of p and verifies that every image stays
// in the domain, that no two inputs share an image, and that Decode inverts
// Encode. It returns the first violation found.
func Check(p Permuter) error {
	min, max := p.Min(), p.Max()
	if max <= min {
		return fmt.Errorf("check failed: domain [%d, %d) cannot be enumerated", min, max)
	}
	n := max - min
	if n > MaxCheckSize {
		return fmt.Errorf("check failed: domain size %d exceeds %d", n, MaxCheckSize)
	}

	seen := make([]uint64, (n+63)/64)
	for x := min; x < max; x++ {
		code, err := p.Encode(x)
		if err != nil {
			return fmt.Errorf("check failed: encode %d: %w", x, err)
		}
		if code < min || code >= max {
			return fmt.Errorf("check failed: image %d of %d outside [%d, %d)", code, x, min, max)
		}
		off := code - min
		if seen[off/64]&(1<<(off%64)) != 0 {
			return fmt.Errorf("check failed: duplicate image %d for %d", code, x)
		}
		seen[off/64] |= 1 << (off % 64)

		back, err := p.Decode(code)
		if err != nil {
			return fmt.Errorf("check failed: decode %d: %w", code, err)
		}
		if back != x {
			return fmt.Errorf("check failed: decode(encode(%d)) = %d", x, back)
		}
	}
	return nil
}
