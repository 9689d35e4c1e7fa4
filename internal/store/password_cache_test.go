package store

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordCache_LoadAbsent(t *testing.T) {
	c := NewPasswordCache(NewMemoryKeyValueStorage())
	assert.Equal(t, map[string]string{}, c.Load(context.Background()))
}

func TestPasswordCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewPasswordCache(NewMemoryKeyValueStorage())

	in := map[string]string{"n1": "pw1", "n2": "пароль"}
	require.NoError(t, c.Save(ctx, in))
	assert.Equal(t, in, c.Load(ctx))
}

func TestPasswordCache_StoredFormat(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStorage()
	c := NewPasswordCache(kv)

	// {"a":"bc"} is 10 bytes, so its base64 ends in "=="
	require.NoError(t, c.Save(ctx, map[string]string{"a": "bc"}))

	raw, err := kv.Get(ctx, PasswordCacheKey)
	require.NoError(t, err)
	assert.NotContains(t, raw, "=")
	assert.True(t, strings.HasSuffix(raw, "~~"))

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(raw, "~", "="))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"bc"}`, string(decoded))
}

func TestPasswordCache_ReadsForeignWriter(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStorage()
	// base64(`{"42":"x"}`) = eyI0MiI6IngifQ== written by another client
	require.NoError(t, kv.Set(ctx, PasswordCacheKey, "eyI0MiI6IngifQ~~"))

	assert.Equal(t, map[string]string{"42": "x"}, NewPasswordCache(kv).Load(ctx))
}

func TestPasswordCache_CorruptStorage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not base64", raw: "%%%not-base64%%%"},
		{name: "not json", raw: base64.StdEncoding.EncodeToString([]byte("plain text"))},
		{name: "json array", raw: base64.StdEncoding.EncodeToString([]byte(`["a"]`))},
		{name: "json null", raw: base64.StdEncoding.EncodeToString([]byte(`null`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := NewMemoryKeyValueStorage()
			require.NoError(t, kv.Set(ctx, PasswordCacheKey, tt.raw))

			got := NewPasswordCache(kv).Load(ctx)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestPasswordCache_RememberForget(t *testing.T) {
	ctx := context.Background()
	c := NewPasswordCache(NewMemoryKeyValueStorage())

	require.NoError(t, c.Remember(ctx, "n1", "a"))
	require.NoError(t, c.Remember(ctx, "n2", "b"))
	require.NoError(t, c.Remember(ctx, "n1", "c"))

	pw, ok := c.Lookup(ctx, "n1")
	assert.True(t, ok)
	assert.Equal(t, "c", pw)

	require.NoError(t, c.Forget(ctx, "n1"))
	require.NoError(t, c.Forget(ctx, "unknown"))
	assert.Equal(t, map[string]string{"n2": "b"}, c.Load(ctx))
}
