package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64EncodeKnownVectors(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"f", "Zg=="},
		{"fo", "Zm8="},
		{"foo", "Zm9v"},
		{"foob", "Zm9vYg=="},
		{"fooba", "Zm9vYmE="},
		{"foobar", "Zm9vYmFy"},
		{"Hello", "SGVsbG8="},
	}
	for _, test := range tests {
		assert.Equal(t, test.out, Base64Encode([]byte(test.in)), "encoding of %q", test.in)
	}
}

func TestBase64DecodeKnownVectors(t *testing.T) {
	decoded, err := Base64Decode("SGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), decoded)

	decoded, err = Base64Decode("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestBase64RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for length := 0; length <= 1000; length++ {
		in := make([]byte, length)
		rng.Read(in)
		encoded := Base64Encode(in)
		require.Len(t, encoded, Base64EncodedLen(length))
		decoded, err := Base64Decode(encoded)
		require.NoError(t, err, "decoding of length %d", length)
		require.Equal(t, in, decoded, "round trip of length %d", length)
	}
}

func TestBase64EncodeUsesOnlyTheStandardAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := make([]byte, 300)
	rng.Read(in)
	for _, c := range []byte(Base64Encode(in)) {
		if c == '=' {
			continue
		}
		assert.GreaterOrEqual(t, base64Values[c], int8(0), "byte %q outside the alphabet", c)
	}
}

func TestBase64DecodeRejectsBadLength(t *testing.T) {
	for _, in := range []string{"A", "AB", "ABC", "ABCDE"} {
		_, err := Base64Decode(in)
		assert.ErrorIs(t, err, ErrInvalidLength, "input %q", in)
	}
}

func TestBase64DecodeRejectsInvalidBytes(t *testing.T) {
	for _, in := range []string{"AB!D", "AB\nD", "A BC", "????"} {
		_, err := Base64Decode(in)
		assert.ErrorIs(t, err, ErrInvalidByte, "input %q", in)
	}
}

func TestBase64DecodeRejectsMisplacedPadding(t *testing.T) {
	for _, in := range []string{"=AAA", "A=AA", "AB=C", "AB==CDEF", "===="} {
		_, err := Base64Decode(in)
		assert.ErrorIs(t, err, ErrInvalidByte, "input %q", in)
	}
}

func BenchmarkBase64Encode(b *testing.B) {
	in := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(in)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Base64Encode(in)
	}
}
