package core

import (
	"fmt"
	"math/bits"
)

// FeistelConfig is the shape of a balanced Feistel network: each half of the
// block is HalfWidth bits wide, so the network permutes [0, 2^(2*HalfWidth)).
type FeistelConfig struct {
	HalfWidth uint
	HalfMask  uint64
	Rounds    uint
}

// DeriveFeistelConfig computes the network shape for a block of numBits bits.
// Odd widths round the half up, so the network domain may be up to twice as
// large as 2^numBits. numBits == 0 yields HalfWidth 0 and the one-element
// domain {0}.
func DeriveFeistelConfig(numBits, rounds uint) (FeistelConfig, error) {
	if numBits > MaxBits {
		return FeistelConfig{}, &ConfigError{Field: "bits", Msg: fmt.Sprintf("%d exceeds %d", numBits, MaxBits)}
	}
	if rounds == 0 {
		return FeistelConfig{}, &ConfigError{Field: "rounds", Msg: "must be at least 1"}
	}
	if rounds > NumRoundConstants {
		return FeistelConfig{}, &ConfigError{
			Field: "rounds",
			Msg:   fmt.Sprintf("%d exceeds the %d available round constants", rounds, NumRoundConstants),
		}
	}
	halfWidth := (numBits + 1) / 2
	return FeistelConfig{
		HalfWidth: halfWidth,
		HalfMask:  (uint64(1) << halfWidth) - 1,
		Rounds:    rounds,
	}, nil
}

// DomainBits is the width of the block the network actually permutes.
func (c FeistelConfig) DomainBits() uint {
	return 2 * c.HalfWidth
}

// InDomain reports whether x is a valid block for this configuration.
func (c FeistelConfig) InDomain(x uint64) bool {
	if c.DomainBits() >= 64 {
		return true
	}
	return x>>c.DomainBits() == 0
}

// BitsFor returns the smallest w with 2^w >= size. size must be non-zero.
func BitsFor(size uint64) uint {
	if size <= 1 {
		return 0
	}
	return uint(64 - bits.LeadingZeros64(size-1))
}

// RangeConfig holds the tunables of a range permutation.
type RangeConfig struct {
	Rounds uint
	Mixer  string // MixerXorShift, MixerXXHash or MixerSplitMix
}

// DefaultRangeConfig returns the configuration used when no options are given.
func DefaultRangeConfig() RangeConfig {
	return RangeConfig{
		Rounds: DefaultRounds,
		Mixer:  MixerXorShift,
	}
}
