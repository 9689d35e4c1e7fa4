package passkey_test

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-serble-keeper/internal/passkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBinary_Encodings(t *testing.T) {
	want := []byte{0xfb, 0xff, 0xbf, 0x01, 0x02}

	tests := []struct {
		name string
		raw  string
	}{
		{"url raw", `"-_-_AQI"`},
		{"url padded", `"-_-_AQI="`},
		{"std raw", `"+/+/AQI"`},
		{"std padded", `"+/+/AQI="`},
		{"byte array", `[251,255,191,1,2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := passkey.DecodeBinary(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeBinary_Invalid(t *testing.T) {
	for _, raw := range []string{``, `null`, `42`, `"*not base64*"`, `[1,256]`, `[-1]`, `{"a":1}`} {
		_, err := passkey.DecodeBinary(json.RawMessage(raw))
		assert.ErrorIs(t, err, passkey.ErrInvalidBinary, raw)
	}
}

func TestEncodeBinary_Unpadded(t *testing.T) {
	assert.Equal(t, "-_-_AQI", passkey.EncodeBinary([]byte{0xfb, 0xff, 0xbf, 0x01, 0x02}))
	assert.Equal(t, "", passkey.EncodeBinary(nil))
}

func TestBinary_RoundTrip(t *testing.T) {
	for _, b := range [][]byte{{0}, {1, 2, 3}, []byte("challenge bytes with length 32!!")} {
		got, err := passkey.DecodeBinaryString(passkey.EncodeBinary(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}
