package passkey

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeBinary returns b as unpadded URL-safe base64, the only form sent
// back to the verifier.
func EncodeBinary(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBinary decodes a JSON value holding binary data. Accepted are a
// string in URL-safe or standard base64, padded or not, and an array of
// byte values.
func DecodeBinary(raw json.RawMessage) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: empty", ErrInvalidBinary)
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBinary, err)
		}
		return DecodeBinaryString(s)
	case '[':
		var values []int
		if err := json.Unmarshal(raw, &values); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBinary, err)
		}
		return bytesFromInts(values)
	default:
		return nil, fmt.Errorf("%w: unexpected json %q", ErrInvalidBinary, raw[0])
	}
}

// DecodeBinaryString is [DecodeBinary] for a bare base64 string.
func DecodeBinaryString(s string) ([]byte, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "=")

	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBinary, err)
	}
	return b, nil
}

func bytesFromInts(values []int) ([]byte, error) {
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: byte %d out of range: %d", ErrInvalidBinary, i, v)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// decodeAny is [DecodeBinary] for a value already unmarshalled into any.
func decodeAny(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBinary, err)
	}
	return DecodeBinary(raw)
}
