package serial

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type word struct{ v uint64 }

func (w word) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint64(nil, w.v), nil
}

func (w *word) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return errors.New("want 8 bytes")
	}
	w.v = binary.LittleEndian.Uint64(data)
	return nil
}

func TestTryMarshalRoundTrip(t *testing.T) {
	data, err := TryMarshal(word{0x0102030405060708})
	require.NoError(t, err)
	assert.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, data)

	var w word
	require.NoError(t, TryUnmarshal(&w, data))
	assert.Equal(t, uint64(0x0102030405060708), w.v)
}

func TestTryMarshalUnsupported(t *testing.T) {
	_, err := TryMarshal(42)
	assert.ErrorContains(t, err, "does not implement encoding.BinaryMarshaler")
	assert.ErrorContains(t, TryUnmarshal(word{}, nil), "does not implement encoding.BinaryUnmarshaler")
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := EncodeToken(word{99})
	require.NoError(t, err)
	var w word
	require.NoError(t, DecodeToken(&w, token))
	assert.Equal(t, uint64(99), w.v)

	assert.Error(t, DecodeToken(&w, "%%"))
	assert.Error(t, DecodeToken(&w, "AAAA"), "3 bytes are not a word")
}
