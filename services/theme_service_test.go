package services

import (
	"testing"

	"github.com/CJR1981/Macro-Tracker/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeDefaultsToLight(t *testing.T) {
	theme := NewThemeService(storage.NewMemStore())

	got, err := theme.Get()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)
}

func TestThemeSetAndGet(t *testing.T) {
	theme := NewThemeService(storage.NewMemStore())

	require.NoError(t, theme.Set(ThemeDark))
	got, err := theme.Get()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	assert.ErrorIs(t, theme.Set("sepia"), ErrBadTheme)
}

func TestThemeToggle(t *testing.T) {
	theme := NewThemeService(storage.NewMemStore())

	got, err := theme.Toggle()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	got, err = theme.Toggle()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got)
}
