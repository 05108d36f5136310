package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreReadWriteDelete(t *testing.T) {
	s := NewMemStore()

	_, ok, err := s.Read("users")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write("users", []byte(`["alice"]`)))
	got, ok, err := s.Read("users")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `["alice"]`, string(got))

	// overwrite
	require.NoError(t, s.Write("users", []byte(`["alice","bob"]`)))
	got, _, _ = s.Read("users")
	assert.Equal(t, `["alice","bob"]`, string(got))

	require.NoError(t, s.Delete("users"))
	_, ok, err = s.Read("users")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStoreCopiesValues(t *testing.T) {
	s := NewMemStore()

	buf := []byte("light")
	require.NoError(t, s.Write(ThemeKey, buf))
	buf[0] = 'X'

	got, _, _ := s.Read(ThemeKey)
	assert.Equal(t, "light", string(got))
}

func TestProfileKey(t *testing.T) {
	assert.Equal(t, "userdata_alice", ProfileKey("alice"))
}
