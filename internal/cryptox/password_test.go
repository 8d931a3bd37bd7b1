package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_FixedLengthHex(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	digest := HashPassword([]byte("pw1"), salt)
	require.Len(t, digest, 64)

	_, err := hex.DecodeString(digest)
	require.NoError(t, err)
}

func TestHashPassword_Deterministic(t *testing.T) {
	salt := []byte("salt-salt-salt-salt-salt-salt-32")

	first := HashPassword([]byte("secret"), salt)
	second := HashPassword([]byte("secret"), salt)
	require.Equal(t, first, second)
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	a := HashPassword([]byte("secret"), []byte("salt-a"))
	b := HashPassword([]byte("secret"), []byte("salt-b"))
	require.NotEqual(t, a, b)
}

func TestVerifyPassword_RoundTrip(t *testing.T) {
	salt := []byte("some-random-salt")
	saltHex := hex.EncodeToString(salt)
	digest := HashPassword([]byte("correct"), salt)

	require.True(t, VerifyPassword([]byte("correct"), saltHex, digest))
	require.False(t, VerifyPassword([]byte("wrong"), saltHex, digest))
}

func TestVerifyPassword_MalformedStoredValues(t *testing.T) {
	salt := []byte("some-random-salt")
	digest := HashPassword([]byte("pw"), salt)

	// Not hex at all.
	require.False(t, VerifyPassword([]byte("pw"), "zz-not-hex", digest))
	require.False(t, VerifyPassword([]byte("pw"), hex.EncodeToString(salt), "zz-not-hex"))

	// Empty salt (record written before salting existed) never verifies.
	require.False(t, VerifyPassword([]byte("pw"), "", digest))
}
