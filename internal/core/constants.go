package core

// DefaultRounds is the number of Feistel rounds used when none is requested.
const DefaultRounds = 3

// MaxBits is the widest block a Feistel network can operate on.
const MaxBits = 64

// roundConstants keys each Feistel round so that successive rounds compute
// different functions of their input. The table must never be modified.
var roundConstants = [...]uint64{
	0x88ef7267b3f978da,
	0x5457c7476ab3e57f,
	0x89529ec3c1eec593,
	0x3fac1e6e30cad1b6,
	0x56c644080098fc55,
	0x70f2b329323dbf62,
	0x08ee98c0d05e3dad,
	0x3eb3d6236f23e7b7,
	0x47d2e1bf72264fa0,
	0x1fb274465e56ba20,
	0x077de40941c93774,
	0x857961a8a772650d,
}

// NumRoundConstants is the size of the round-constant table and therefore
// the largest round count a network can be built with.
const NumRoundConstants = uint(len(roundConstants))

// RoundConstant returns the constant for round i.
// It panics if i >= NumRoundConstants; configs are validated before use.
func RoundConstant(i uint) uint64 {
	return roundConstants[i]
}
