// Package authsvc - Test hash và so khớp mật khẩu admin.
package authsvc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "secret123", hash, "hash không được là plaintext")
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "hash phải theo format bcrypt")
	assert.True(t, ComparePassword(hash, "secret123"), "mật khẩu đúng phải so khớp được")
	assert.False(t, ComparePassword(hash, "secret124"), "mật khẩu sai không được so khớp")
}

func TestHashPassword_DifferentSaltPerCall(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "mỗi lần hash phải sinh salt khác nhau")
	assert.True(t, ComparePassword(h1, "secret123"))
	assert.True(t, ComparePassword(h2, "secret123"))
}

func TestComparePassword_InvalidHash(t *testing.T) {
	assert.False(t, ComparePassword("not-a-bcrypt-hash", "secret123"))
	assert.False(t, ComparePassword("", "secret123"))
}
