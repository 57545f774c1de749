package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)

	tok, err := m.Issue("u-1", "ann")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ann", claims.Username)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	other := NewJWTManager("secret-b", time.Hour)

	tok, err := m.Issue("u-1", "ann")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewJWTManager("testsecret", -time.Minute)

	tok, err := m.Issue("u-1", "ann")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewJWTManager("testsecret", time.Hour)
	_, err := m.Verify("not.a.token")
	assert.Error(t, err)
}
