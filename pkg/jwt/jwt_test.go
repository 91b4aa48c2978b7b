package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.GenerateAccessToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "access", claims.Type)
}

func TestValidateExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.GenerateAccessToken("admin")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.GenerateAccessToken("admin")
	require.NoError(t, err)

	other := NewManager("other-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateMalformedToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := manager.ValidateToken(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}

func TestAccessTTL(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	assert.Equal(t, time.Hour, manager.AccessTTL())
}
