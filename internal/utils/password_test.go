package utils_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/agentdms/agentdms-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, utils.CheckPasswordHash("anything", ""))
}

func TestCheckLegacyPasswordHash(t *testing.T) {
	sum := sha256.Sum256([]byte("admin123"))
	legacy := hex.EncodeToString(sum[:])

	assert.True(t, utils.CheckLegacyPasswordHash("admin123", legacy))
	assert.False(t, utils.CheckLegacyPasswordHash("admin124", legacy))
	assert.False(t, utils.CheckLegacyPasswordHash("admin123", ""))
}

func TestHashResetToken_Deterministic(t *testing.T) {
	a := utils.HashResetToken("token-value")
	b := utils.HashResetToken("token-value")
	c := utils.HashResetToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, "token-value", a)
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	b, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
