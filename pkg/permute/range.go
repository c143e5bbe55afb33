// Package permute maps every integer of a half-open range [min, max) onto
// the same range, bijectively and in a pseudo-random looking order, without
// tables. A Feistel network permutes the smallest power-of-two domain that
// covers the range and cycle-walking folds it back onto the range.
//
// The construction is not a cipher. Do not use it to hide anything.
package permute

import (
	"fmt"

	"fpperm/internal/core"
)

// Permuter is a bijection on [Min(), Max()).
type Permuter interface {
	Encode(x uint64) (uint64, error)
	Decode(code uint64) (uint64, error)
	Min() uint64
	Max() uint64
}

var (
	_ Permuter = (*RangePermutation)(nil)
	_ Permuter = (*FeistelNetwork)(nil)
)

// Option tunes a RangePermutation.
type Option func(*core.RangeConfig)

// WithRounds sets the number of Feistel rounds (default core.DefaultRounds).
func WithRounds(rounds uint) Option {
	return func(c *core.RangeConfig) { c.Rounds = rounds }
}

// WithMixer selects the round function by name, see core.MixerByName.
func WithMixer(name string) Option {
	return func(c *core.RangeConfig) { c.Mixer = name }
}

// RangePermutation is a bijection on [min, max). It holds no mutable state
// and is safe for concurrent use once constructed.
type RangePermutation struct {
	min    uint64
	size   uint64
	cfg    core.RangeConfig
	cipher *FeistelNetwork
}

// NewRangePermutation builds a permutation of [min, max).
func NewRangePermutation(min, max uint64, opts ...Option) (*RangePermutation, error) {
	if max <= min {
		return nil, &core.DomainError{Min: min, Max: max, Err: core.ErrEmptyRange}
	}
	cfg := core.DefaultRangeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newRangePermutation(min, max, cfg)
}

func newRangePermutation(min, max uint64, cfg core.RangeConfig) (*RangePermutation, error) {
	if cfg.Mixer == "" {
		cfg.Mixer = core.MixerXorShift
	}
	mixer, err := core.MixerByName(cfg.Mixer)
	if err != nil {
		return nil, fmt.Errorf("range permutation: %w", err)
	}
	size := max - min
	cipher, err := NewFeistelNetworkWithMixer(core.BitsFor(size), cfg.Rounds, mixer)
	if err != nil {
		return nil, fmt.Errorf("range permutation: %w", err)
	}
	return &RangePermutation{min: min, size: size, cfg: cfg, cipher: cipher}, nil
}

// Min returns the inclusive lower bound.
func (p *RangePermutation) Min() uint64 { return p.min }

// Max returns the exclusive upper bound.
func (p *RangePermutation) Max() uint64 { return p.min + p.size }

// Size returns max - min.
func (p *RangePermutation) Size() uint64 { return p.size }

// Rounds returns the Feistel round count.
func (p *RangePermutation) Rounds() uint { return p.cfg.Rounds }

// MixerName returns the configured round function name.
func (p *RangePermutation) MixerName() string { return p.cfg.Mixer }

// Cipher returns the underlying power-of-two network.
func (p *RangePermutation) Cipher() *FeistelNetwork { return p.cipher }

// Contains reports whether x lies in [min, max).
func (p *RangePermutation) Contains(x uint64) bool {
	return x >= p.min && x-p.min < p.size
}

// Encode maps i in [min, max) to its image in [min, max).
func (p *RangePermutation) Encode(i uint64) (uint64, error) {
	code, _, err := p.Walk(i)
	return code, err
}

// Walk is Encode that also reports how many times the cipher was applied
// before the walk re-entered the range. steps is always at least 1.
func (p *RangePermutation) Walk(i uint64) (code uint64, steps int, err error) {
	if !p.Contains(i) {
		return 0, 0, p.domainError(i)
	}
	x := i - p.min
	// The cipher's cycle through x must come back to x, which is in range,
	// so the loop ends without an explicit bound.
	for {
		x = p.cipher.encode(x)
		steps++
		if x < p.size {
			return x + p.min, steps, nil
		}
	}
}

// Decode returns the unique i with Encode(i) == code.
func (p *RangePermutation) Decode(code uint64) (uint64, error) {
	if !p.Contains(code) {
		return 0, p.domainError(code)
	}
	x := code - p.min
	for {
		x = p.cipher.decode(x)
		if x < p.size {
			return x + p.min, nil
		}
	}
}

func (p *RangePermutation) domainError(v uint64) error {
	return &core.DomainError{Value: v, Min: p.min, Max: p.Max(), Err: core.ErrOutOfRange}
}

// String describes the permutation.
func (p *RangePermutation) String() string {
	return fmt.Sprintf("RangePermutation{[%d, %d), rounds=%d, mixer=%s}", p.min, p.Max(), p.cfg.Rounds, p.cfg.Mixer)
}
