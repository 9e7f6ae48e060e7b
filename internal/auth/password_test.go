package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher("")
	require.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	h, err = NewPasswordHasher(HasherPlain)
	require.NoError(t, err)
	assert.IsType(t, PlainHasher{}, h)

	_, err = NewPasswordHasher("md5")
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	stored, err := h.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", stored)

	assert.True(t, h.Compare(stored, "123456"))
	assert.False(t, h.Compare(stored, "1234567"))
	assert.False(t, h.Compare("123456", "123456"), "clear text is not a valid bcrypt hash")
}

func TestPlainHasher(t *testing.T) {
	h := PlainHasher{}

	stored, err := h.Hash("y")
	require.NoError(t, err)
	assert.Equal(t, "y", stored)
	assert.True(t, h.Compare(stored, "y"))
	assert.False(t, h.Compare(stored, "x"))
}
