package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIssueAndValidate(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour)

	token, err := manager.Issue("Maria", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "Maria", claims.Name)
	assert.Equal(t, "admin", claims.AccessLevel)
}

func TestSessionValidateRejections(t *testing.T) {
	manager := NewSessionManager("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Validate("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSessionManager("other-secret", time.Hour)
		token, err := other.Issue("Maria", "user")
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewSessionManager("test-secret", -time.Minute)
		token, err := expired.Issue("Maria", "user")
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.Error(t, err)
	})
}

func TestGenerateSaleReference(t *testing.T) {
	ref := GenerateSaleReference()
	assert.Regexp(t, `^SALE-[0-9A-F]{8}$`, ref)
	assert.NotEqual(t, ref, GenerateSaleReference())
}
