package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessLevelNormalize(t *testing.T) {
	assert.Equal(t, AccessLevelAdmin, AccessLevel("ADMIN").Normalize())
	assert.Equal(t, AccessLevelAdmin, AccessLevel(" admin ").Normalize())
	assert.Equal(t, AccessLevelUser, AccessLevel("user").Normalize())
	// anything unknown falls back to the least privileged level
	assert.Equal(t, AccessLevelUser, AccessLevel("root").Normalize())
	assert.Equal(t, AccessLevelUser, AccessLevel("").Normalize())
}

func TestAccessLevelIsAdmin(t *testing.T) {
	assert.True(t, AccessLevelAdmin.IsAdmin())
	assert.False(t, AccessLevelUser.IsAdmin())
}
