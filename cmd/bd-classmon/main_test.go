package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueflashxs/bdtk/internal/classmap"
)

func testSnapshot() classmap.Mapping {
	return classmap.Mapping{
		"100": {"container": "container_ae16b8"},
	}
}

func TestBaselineCheckDoesNotPrime(t *testing.T) {
	cache, err := classmap.NewCache(t.TempDir())
	require.NoError(t, err)

	cached, done, err := baseline(false, cache, testSnapshot())
	require.NoError(t, err)
	assert.True(t, done)
	assert.Nil(t, cached)

	// Read-only: no snapshot file may appear.
	_, err = os.Stat(filepath.Join(cache.Dir, "discordclasses.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestBaselineUpdatePrimes(t *testing.T) {
	cache, err := classmap.NewCache(t.TempDir())
	require.NoError(t, err)
	snapshot := testSnapshot()

	cached, done, err := baseline(true, cache, snapshot)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Nil(t, cached)

	// The primed snapshot becomes the baseline of the next run.
	cached, done, err = baseline(true, cache, snapshot)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, snapshot, cached)
}
