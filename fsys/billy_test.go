package fsys

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ReadWrite(t *testing.T) {
	memFS := NewInMemory()

	require.NoError(t, memFS.MkdirAll("/data", 0o755))
	require.NoError(t, memFS.WriteFile("/data/a.json", []byte(`{}`), 0o644))

	content, err := memFS.ReadFile("/data/a.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(content))

	info, err := memFS.Stat("/data/a.json")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	entries, err := memFS.ReadDir("/data")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name())
}

func TestFS_Exists(t *testing.T) {
	memFS := NewInMemory()
	require.NoError(t, memFS.WriteFile("/here", []byte("x"), 0o644))

	exists, err := memFS.Exists("/here")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = memFS.Exists("/not-here")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_StatMissingMatchesNotExist(t *testing.T) {
	memFS := NewInMemory()

	_, err := memFS.Stat("/missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
