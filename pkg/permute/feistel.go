package permute

import (
	"fmt"

	"fpperm/internal/core"
)

// FeistelNetwork is a balanced Feistel cipher over [0, 2^(2*HalfWidth)).
// It is a bijection for any mixer and any round count, because each round
// changes one half using only the other, unchanged half.
//
// A FeistelNetwork is immutable and safe for concurrent use.
type FeistelNetwork struct {
	bits  uint
	cfg   core.FeistelConfig
	mixer core.Mixer
}

// NewFeistelNetwork builds a network for numBits-bit blocks using core.Mix.
func NewFeistelNetwork(numBits, rounds uint) (*FeistelNetwork, error) {
	return NewFeistelNetworkWithMixer(numBits, rounds, core.Mix)
}

// NewFeistelNetworkWithMixer builds a network with a custom round function.
func NewFeistelNetworkWithMixer(numBits, rounds uint, mixer core.Mixer) (*FeistelNetwork, error) {
	if mixer == nil {
		return nil, &core.ConfigError{Field: "mixer", Msg: "nil round function"}
	}
	cfg, err := core.DeriveFeistelConfig(numBits, rounds)
	if err != nil {
		return nil, fmt.Errorf("feistel network: %w", err)
	}
	return &FeistelNetwork{bits: numBits, cfg: cfg, mixer: mixer}, nil
}

// Bits returns the block width the network was requested for.
func (f *FeistelNetwork) Bits() uint { return f.bits }

// Config returns the derived network shape.
func (f *FeistelNetwork) Config() core.FeistelConfig { return f.cfg }

// DomainSize returns 2^(2*HalfWidth), or 0 when the domain is all of uint64.
func (f *FeistelNetwork) DomainSize() uint64 {
	if f.cfg.DomainBits() >= 64 {
		return 0
	}
	return uint64(1) << f.cfg.DomainBits()
}

// Min implements Permuter.
func (f *FeistelNetwork) Min() uint64 { return 0 }

// Max implements Permuter. It returns 0 for the full 64-bit domain.
func (f *FeistelNetwork) Max() uint64 { return f.DomainSize() }

// Encode permutes msg. msg must lie in [0, DomainSize()).
func (f *FeistelNetwork) Encode(msg uint64) (uint64, error) {
	if !f.cfg.InDomain(msg) {
		return 0, f.domainError(msg)
	}
	return f.encode(msg), nil
}

// Decode inverts Encode: Decode(Encode(x)) == x for every x in the domain.
func (f *FeistelNetwork) Decode(code uint64) (uint64, error) {
	if !f.cfg.InDomain(code) {
		return 0, f.domainError(code)
	}
	return f.decode(code), nil
}

func (f *FeistelNetwork) domainError(v uint64) error {
	return &core.DomainError{Value: v, Min: 0, Max: f.DomainSize(), Err: core.ErrOutOfRange}
}

func (f *FeistelNetwork) encode(msg uint64) uint64 {
	left, right := f.split(msg)
	for i := uint(0); i < f.cfg.Rounds; i++ {
		left, right = right, left^(f.mixer(right, core.RoundConstant(i))&f.cfg.HalfMask)
	}
	return f.combine(left, right)
}

func (f *FeistelNetwork) decode(code uint64) uint64 {
	left, right := f.split(code)
	for i := f.cfg.Rounds; i > 0; i-- {
		left, right = right^(f.mixer(left, core.RoundConstant(i-1))&f.cfg.HalfMask), left
	}
	return f.combine(left, right)
}

func (f *FeistelNetwork) split(x uint64) (left, right uint64) {
	return (x >> f.cfg.HalfWidth) & f.cfg.HalfMask, x & f.cfg.HalfMask
}

func (f *FeistelNetwork) combine(left, right uint64) uint64 {
	return (left << f.cfg.HalfWidth) | right
}
