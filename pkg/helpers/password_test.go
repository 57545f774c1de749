package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, ComparePassword(hash, "secret1"))
	assert.False(t, ComparePassword(hash, "wrong"))
	assert.False(t, ComparePassword("", "secret1"))
}
