package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The real codec is saved by TestMain before patching; exercise it here.

func TestGameKey_RoundTrip(t *testing.T) {
	t.Setenv("GAME_KEY_SECRET", "test-secret")

	key, err := realEncodeGameKey(42)
	require.NoError(t, err)
	assert.NotEmpty(t, key)

	id, err := realDecodeGameKey(key)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestGameKey_DecodeGarbage(t *testing.T) {
	t.Setenv("GAME_KEY_SECRET", "test-secret")

	_, err := realDecodeGameKey("not-a-game-key")
	assert.Error(t, err)
}

func TestGameKey_DecodeWrongSecret(t *testing.T) {
	t.Setenv("GAME_KEY_SECRET", "test-secret")
	key, err := realEncodeGameKey(7)
	require.NoError(t, err)

	t.Setenv("GAME_KEY_SECRET", "another-secret")
	_, err = realDecodeGameKey(key)
	assert.Error(t, err)
}
