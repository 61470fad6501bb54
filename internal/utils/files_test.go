package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, SafeWriteFile(path, []byte("a: 1\n")))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(b))

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestPrettyJSON(t *testing.T) {
	b, err := PrettyJSON(map[string]int{"counts": 3})
	require.NoError(t, err)
	assert.Contains(t, string(b), "\"counts\": 3")
}
