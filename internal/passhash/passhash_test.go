package passhash

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_LengthAndEntropy(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, s1, SaltLength)

	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2, "two fresh salts should differ")
}

func TestHash_MatchesReferenceComputation(t *testing.T) {
	salt := []byte("0123456789abcdef")
	password := "Sup3r$ecret"

	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))

	assert.Equal(t, want, Hash(password, salt))
}

func TestHash_DifferentSaltsDifferentDigests(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, Hash("CommonPass1!", s1), Hash("CommonPass1!", s2))
}

func TestVerify_RoundTrip(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	digest := Hash("Correct#Horse1", salt)
	saltText := EncodeSalt(salt)

	assert.True(t, Verify("Correct#Horse1", saltText, digest))
	assert.False(t, Verify("Correct#Horse2", saltText, digest))
	assert.False(t, Verify("", saltText, digest))
}

func TestVerify_MalformedStoredData(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	digest := Hash("Correct#Horse1", salt)

	// salt that is not valid base64
	assert.False(t, Verify("Correct#Horse1", "!!!not-base64!!!", digest))

	// digest truncated to a different length
	assert.False(t, Verify("Correct#Horse1", EncodeSalt(salt), digest[:10]))

	// both empty
	assert.False(t, Verify("Correct#Horse1", "", ""))
}
