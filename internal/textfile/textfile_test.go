package textfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugin.js")
	require.NoError(t, os.WriteFile(path, []byte("original\n"), 0644))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "original\n", content)

	_, err = Read(filepath.Join(t.TempDir(), "missing.js"))
	assert.Error(t, err)
}

func TestWriteTakesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.css")
	original := ".a { color: red; }\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	require.NoError(t, Write(path, ".a { color: blue; }\n"))

	// The backup must be byte-identical to the pre-transform original.
	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))

	current, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, ".a { color: blue; }\n", current)
}

func TestWriteNewFileSkipsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.css")
	require.NoError(t, Write(path, "x"))

	_, err := os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err))
}

func TestTimestampedBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.css")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	backupPath, err := TimestampedBackup(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(backupPath, path+"."))
	assert.True(t, strings.HasSuffix(backupPath, ".bak"))

	data, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))
}

func TestProbeLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.False(t, ProbeLocked(path))

	assert.True(t, ProbeLocked(filepath.Join(t.TempDir(), "absent.txt")))
}

func TestSHA256(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	fileHash, err := SHA256(path)
	require.NoError(t, err)
	assert.Equal(t, SHA256Bytes([]byte("hello")), fileHash)
	assert.Len(t, fileHash, 64)
}
