package permute

import (
	"encoding/binary"
	"errors"
	"fmt"

	"fpperm/internal/core"
)

const descriptorVersion = 1

// descriptor layout, little endian:
// version u8 | min u64 | max u64 | rounds u32 | len(mixer) u8 | mixer
const descriptorHeader = 1 + 8 + 8 + 4 + 1

var errShortDescriptor = errors.New("descriptor too short")

// MarshalBinary encodes the construction parameters of p. Rebuilding from
// them yields a permutation with identical output.
func (p *RangePermutation) MarshalBinary() ([]byte, error) {
	if p.cipher == nil {
		return nil, errors.New("marshal: uninitialized RangePermutation")
	}
	name := p.cfg.Mixer
	if len(name) > 255 {
		return nil, fmt.Errorf("marshal: mixer name %q too long", name)
	}
	buf := make([]byte, descriptorHeader, descriptorHeader+len(name))
	buf[0] = descriptorVersion
	binary.LittleEndian.PutUint64(buf[1:], p.min)
	binary.LittleEndian.PutUint64(buf[9:], p.Max())
	binary.LittleEndian.PutUint32(buf[17:], uint32(p.cfg.Rounds))
	buf[21] = byte(len(name))
	return append(buf, name...), nil
}

// UnmarshalBinary rebuilds p from a descriptor written by MarshalBinary.
// The parameters are validated exactly as by NewRangePermutation; on error p
// is left unchanged.
func (p *RangePermutation) UnmarshalBinary(data []byte) error {
	if len(data) < descriptorHeader {
		return fmt.Errorf("unmarshal: %w (%d bytes)", errShortDescriptor, len(data))
	}
	if data[0] != descriptorVersion {
		return fmt.Errorf("unmarshal: unsupported descriptor version %d", data[0])
	}
	min := binary.LittleEndian.Uint64(data[1:])
	max := binary.LittleEndian.Uint64(data[9:])
	rounds := binary.LittleEndian.Uint32(data[17:])
	nameLen := int(data[21])
	if len(data) != descriptorHeader+nameLen {
		return fmt.Errorf("unmarshal: descriptor length %d, want %d", len(data), descriptorHeader+nameLen)
	}
	if max <= min {
		return fmt.Errorf("unmarshal: %w", &core.DomainError{Min: min, Max: max, Err: core.ErrEmptyRange})
	}
	cfg := core.RangeConfig{Rounds: uint(rounds), Mixer: string(data[descriptorHeader:])}
	built, err := newRangePermutation(min, max, cfg)
	if err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	*p = *built
	return nil
}
