package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("220547")
	assert.NoError(t, err)
	assert.NotEqual(t, "220547", hash)

	assert.True(t, CheckPassword(hash, "220547"))
	assert.False(t, CheckPassword(hash, "220548"))
	assert.False(t, CheckPassword("", "220547"))
}
