package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	subject, text, html, err := RenderWelcome(map[string]any{
		"Username": "ann",
		"Email":    "ann@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Socialite", subject)
	assert.Contains(t, text, "ann")
	assert.Contains(t, html, "ann@x.com")
}
