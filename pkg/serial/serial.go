// Package serial converts values implementing the encoding.Binary(Un)Marshaler
// interfaces to and from bytes and printable tokens.
package serial

import (
	"encoding"
	"encoding/base64"
	"fmt"
)

// TryMarshal marshals v if it implements encoding.BinaryMarshaler.
func TryMarshal(v any) ([]byte, error) {
	if marshaler, ok := v.(encoding.BinaryMarshaler); ok {
		return marshaler.MarshalBinary()
	}
	return nil, fmt.Errorf("type %T does not implement encoding.BinaryMarshaler", v)
}

// TryUnmarshal unmarshals data into v if it implements encoding.BinaryUnmarshaler.
// v must be a pointer to the target object.
func TryUnmarshal(v any, data []byte) error {
	if unmarshaler, ok := v.(encoding.BinaryUnmarshaler); ok {
		return unmarshaler.UnmarshalBinary(data)
	}
	return fmt.Errorf("type %T does not implement encoding.BinaryUnmarshaler", v)
}

// EncodeToken marshals v and returns it as unpadded URL-safe base64, short
// enough to pass around in an environment variable.
func EncodeToken(v any) (string, error) {
	data, err := TryMarshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeToken reverses EncodeToken into v.
func DecodeToken(v any, token string) error {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}
	return TryUnmarshal(v, data)
}
