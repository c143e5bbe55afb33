package util

import (
	"math/rand"
	"sort"
)

// SampleRange returns up to n distinct values drawn from [min, max) with a
// generator seeded by seed, sorted ascending. If the range holds fewer than
// n values, every value in it is returned. max == min yields nil.
func SampleRange(min, max uint64, n int, seed int64) []uint64 {
	if max <= min || n <= 0 {
		return nil
	}
	size := max - min
	if uint64(n) >= size {
		out := make([]uint64, 0, size)
		for v := min; v < max; v++ {
			out = append(out, v)
		}
		return out
	}

	rng := rand.New(rand.NewSource(seed))
	seen := make(map[uint64]struct{}, n)
	out := make([]uint64, 0, n)
	for len(out) < n {
		v := min + uniform(rng, size)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// uniform draws from [0, n) without modulo bias. n must be non-zero.
func uniform(rng *rand.Rand, n uint64) uint64 {
	if n&(n-1) == 0 {
		return rng.Uint64() & (n - 1)
	}
	limit := ^uint64(0) - (^uint64(0) % n)
	for {
		v := rng.Uint64()
		if v < limit {
			return v % n
		}
	}
}

// Shuffled returns the values of [min, max) in an order shuffled by a
// generator seeded by seed. It materializes the whole range.
func Shuffled(min, max uint64, seed int64) []uint64 {
	if max <= min {
		return nil
	}
	out := make([]uint64, 0, max-min)
	for v := min; v < max; v++ {
		out = append(out, v)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
