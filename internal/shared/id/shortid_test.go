package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	for _, length := range []int{1, 8, DefaultLength, 32} {
		got, err := Generate(length)
		require.NoError(t, err)
		assert.Len(t, got, length)
	}
}

func TestGenerate_NonPositiveLengthUsesDefault(t *testing.T) {
	got, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)

	got, err = Generate(-5)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLength)
}

func TestGenerate_AlphabetOnly(t *testing.T) {
	got, err := Generate(64)
	require.NoError(t, err)
	for _, r := range got {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	got, err := GenerateWithPrefix(PrefixClient, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "cli_"))
	assert.Len(t, got, len("cli_")+DefaultLength)
	assert.True(t, HasPrefix(got, PrefixClient))
	assert.False(t, HasPrefix(got, PrefixSeller))
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := MustGenerate(DefaultLength)
		assert.False(t, seen[got], "duplicate short ID generated")
		seen[got] = true
	}
}
