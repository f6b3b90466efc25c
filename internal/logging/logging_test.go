package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")

	closeLog, err := Setup(path)
	require.NoError(t, err)
	log.Printf("✅ hello from test")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "✅ hello from test")
}

func TestSetup_NoFile(t *testing.T) {
	closeLog, err := Setup("")
	require.NoError(t, err)
	assert.NoError(t, closeLog())
}
