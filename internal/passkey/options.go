package passkey

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-webauthn/webauthn/protocol"
)

// DecodeCreationOptions parses registration options issued by a verifier.
// Binary members (challenge, user.id, excludeCredentials[].id) may use any
// encoding [DecodeBinary] accepts. A missing challenge yields
// [ErrMalformedChallenge].
func DecodeCreationOptions(raw json.RawMessage) (protocol.PublicKeyCredentialCreationOptions, error) {
	var opts protocol.PublicKeyCredentialCreationOptions

	canonical, err := canonicalize(raw, func(m map[string]any) error {
		if user, ok := m["user"].(map[string]any); ok {
			if err := transcodeField(user, "id"); err != nil {
				return fmt.Errorf("user.id: %w", err)
			}
		}
		return transcodeDescriptors(m, "excludeCredentials")
	})
	if err != nil {
		return opts, err
	}

	if err = json.Unmarshal(canonical, &opts); err != nil {
		return opts, fmt.Errorf("decode creation options: %w", err)
	}
	return opts, nil
}

// DecodeRequestOptions parses authentication options issued by a verifier.
// Binary members (challenge, allowCredentials[].id) may use any encoding
// [DecodeBinary] accepts. A missing challenge yields [ErrMalformedChallenge].
func DecodeRequestOptions(raw json.RawMessage) (protocol.PublicKeyCredentialRequestOptions, error) {
	var opts protocol.PublicKeyCredentialRequestOptions

	canonical, err := canonicalize(raw, func(m map[string]any) error {
		return transcodeDescriptors(m, "allowCredentials")
	})
	if err != nil {
		return opts, err
	}

	if err = json.Unmarshal(canonical, &opts); err != nil {
		return opts, fmt.Errorf("decode request options: %w", err)
	}
	return opts, nil
}

// UserHandle returns the user.id of opts as bytes.
func UserHandle(opts protocol.PublicKeyCredentialCreationOptions) ([]byte, error) {
	switch id := opts.User.ID.(type) {
	case nil:
		return nil, nil
	case []byte:
		return id, nil
	case protocol.URLEncodedBase64:
		return id, nil
	case string:
		return DecodeBinaryString(id)
	default:
		return decodeAny(id)
	}
}

// canonicalize rewrites every binary member of raw into unpadded URL-safe
// base64, the only form protocol.URLEncodedBase64 accepts.
func canonicalize(raw json.RawMessage, extra func(map[string]any) error) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil || m == nil {
		return nil, fmt.Errorf("%w: options are not an object", ErrMalformedChallenge)
	}
	if inner, ok := m["publicKey"].(map[string]any); ok {
		m = inner
	}

	if isEmptyBinary(m["challenge"]) {
		return nil, fmt.Errorf("%w: no challenge", ErrMalformedChallenge)
	}
	if err := transcodeField(m, "challenge"); err != nil {
		return nil, fmt.Errorf("challenge: %w", err)
	}
	if err := extra(m); err != nil {
		return nil, err
	}

	return json.Marshal(m)
}

func isEmptyBinary(v any) bool {
	switch b := v.(type) {
	case nil:
		return true
	case string:
		return b == ""
	case []any:
		return len(b) == 0
	default:
		return false
	}
}

func transcodeField(m map[string]any, key string) error {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	b, err := decodeAny(v)
	if err != nil {
		return err
	}
	m[key] = EncodeBinary(b)
	return nil
}

func transcodeDescriptors(m map[string]any, key string) error {
	list, ok := m[key].([]any)
	if !ok {
		return nil
	}
	for i, item := range list {
		descriptor, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if err := transcodeField(descriptor, "id"); err != nil {
			return fmt.Errorf("%s[%d].id: %w", key, i, err)
		}
	}
	return nil
}
