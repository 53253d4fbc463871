package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/happycollision/pyenv/internal/testsafety"
)

const (
	overlayPresent = "PYENV_TESTUTIL_PRESENT"
	overlayAbsent  = "PYENV_TESTUTIL_ABSENT"
)

func TestWithEnv_AppliesAndRestores(t *testing.T) {
	t.Setenv(overlayPresent, "before")
	os.Unsetenv(overlayAbsent)

	WithEnv(t, map[string]string{overlayPresent: "during", overlayAbsent: "3.9.2"}, func() {
		assert.Equal(t, "during", os.Getenv(overlayPresent))
		assert.Equal(t, "3.9.2", os.Getenv(overlayAbsent))
	})

	assert.Equal(t, "before", os.Getenv(overlayPresent))
	_, ok := os.LookupEnv(overlayAbsent)
	assert.False(t, ok, "variable absent before the overlay must be unset afterwards")
}

func TestWithEnv_RestoresOnPanic(t *testing.T) {
	t.Setenv(overlayPresent, "before")

	assert.Panics(t, func() {
		WithEnv(t, map[string]string{overlayPresent: "during"}, func() {
			panic("boom")
		})
	})
	assert.Equal(t, "before", os.Getenv(overlayPresent))
}

func TestApplyEnv_EmptyValueIsSet(t *testing.T) {
	t.Setenv(overlayPresent, "before")

	restore, err := ApplyEnv(map[string]string{overlayPresent: ""})
	require.NoError(t, err)

	value, ok := os.LookupEnv(overlayPresent)
	assert.True(t, ok)
	assert.Empty(t, value)

	restore()
	assert.Equal(t, "before", os.Getenv(overlayPresent))
}

func TestApplyEnv_InvalidNameRevertsEverything(t *testing.T) {
	t.Setenv(overlayPresent, "before")

	// Sorted order applies overlayPresent before the invalid name fails
	_, err := ApplyEnv(map[string]string{overlayPresent: "during", "PYENV_ZZ\x00BAD": "x"})

	require.Error(t, err)
	assert.Equal(t, "before", os.Getenv(overlayPresent))
}
