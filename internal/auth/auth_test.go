package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher(t *testing.T) {
	h := SHA256Hasher{}

	a, err := h.Hash("pw1")
	require.NoError(t, err)
	b, _ := h.Hash("pw1")

	// unsalted: same input, same digest
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.True(t, h.Check(a, "pw1"))
	assert.False(t, h.Check(a, "pw2"))
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)
	assert.True(t, h.Check(hash, "pw1"))
	assert.False(t, h.Check(hash, "nope"))
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	assert.Equal(t, 4, NewBcryptHasher(1).Cost)
	assert.Equal(t, 31, NewBcryptHasher(99).Cost)
	assert.Equal(t, 10, NewBcryptHasher(0).Cost)
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher("", 0)
	require.NoError(t, err)
	assert.IsType(t, SHA256Hasher{}, h)

	h, err = NewHasher("bcrypt", 4)
	require.NoError(t, err)
	assert.IsType(t, &BcryptHasher{}, h)

	_, err = NewHasher("md5", 0)
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("u1", "doctor", "Bob", "bob@x.com", "secret")
	require.NoError(t, err)

	c, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "doctor", c.Role)
	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, "bob@x.com", c.Email)
}

func TestParseTokenRejects(t *testing.T) {
	good, _ := MakeToken("u1", "patient", "A", "a@x.com", "secret")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1"})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	anon, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("secret"))

	tests := []struct {
		name string
		raw  string
	}{
		{"wrong secret", good},
		{"garbage", "not.a.token"},
		{"alg none", unsigned},
		{"no user id", anon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := "secret"
			if tt.name == "wrong secret" {
				secret = "other"
			}
			_, err := ParseToken(tt.raw, secret)
			assert.Error(t, err)
		})
	}
}
