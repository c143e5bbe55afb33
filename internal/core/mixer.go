package core

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Mixer combines a half-block value with a round constant into a
// pseudo-random-looking word. A Feistel network stays invertible whatever
// the mixer computes, so mixers need not be invertible themselves.
type Mixer func(value, constant uint64) uint64

// Mixer names accepted by MixerByName.
const (
	MixerXorShift = "xorshift"
	MixerXXHash   = "xxhash"
	MixerSplitMix = "splitmix"
)

// Mix is the default round function: an xorshift step followed by a
// multiplication with an odd constant. Not a PRF.
func Mix(a, b uint64) uint64 {
	x := a + b
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x * 0x2545f4914f6cdd1d
}

// XXHashMix hashes the little-endian bytes of value with xxHash64, using the
// round constant as seed.
func XXHashMix(value, constant uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	d := xxhash.NewWithSeed(constant)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// SplitMix applies the SplitMix64 finalizer to value + constant.
func SplitMix(value, constant uint64) uint64 {
	return Mix64(value + constant)
}

// Mix64 implements the SplitMix64 finalizer.
func Mix64(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// MixerByName resolves a configured mixer name. The empty name selects Mix.
func MixerByName(name string) (Mixer, error) {
	switch name {
	case "", MixerXorShift:
		return Mix, nil
	case MixerXXHash:
		return XXHashMix, nil
	case MixerSplitMix:
		return SplitMix, nil
	default:
		return nil, &ConfigError{Field: "mixer", Msg: fmt.Sprintf("unknown mixer %q", name)}
	}
}

// IterateMix feeds n through Mix once per round constant, for the first
// rounds constants. It is a sort key, not a permutation: distinct inputs
// may collide.
func IterateMix(n uint64, rounds uint) uint64 {
	if rounds > NumRoundConstants {
		rounds = NumRoundConstants
	}
	for i := uint(0); i < rounds; i++ {
		n = Mix(n, roundConstants[i])
	}
	return n
}
