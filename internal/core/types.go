package core

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by DomainError.
var (
	ErrEmptyRange = errors.New("empty range")
	ErrOutOfRange = errors.New("value out of range")
)

// ConfigError reports a construction parameter that cannot produce a usable
// network (too many rounds, block too wide, unknown mixer).
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// DomainError reports a value outside the half-open interval [Min, Max).
// At construction time Value is unused and Err is ErrEmptyRange.
// Max == 0 with Min == 0 denotes the full 64-bit domain.
type DomainError struct {
	Value uint64
	Min   uint64
	Max   uint64
	Err   error
}

func (e *DomainError) Error() string {
	if errors.Is(e.Err, ErrEmptyRange) {
		return fmt.Sprintf("%v: [%d, %d)", e.Err, e.Min, e.Max)
	}
	return fmt.Sprintf("%v: %d not in [%d, %d)", e.Err, e.Value, e.Min, e.Max)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
