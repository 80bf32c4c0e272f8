package preview

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}

func TestCleanupRemovesTempFiles(t *testing.T) {
	b := NewBrowser(nopLogger{})

	file, err := os.CreateTemp(t.TempDir(), "mdhtml-*.html")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	b.mu.Lock()
	b.tempFiles = append(b.tempFiles, file.Name())
	b.mu.Unlock()

	b.Cleanup()

	_, err = os.Stat(file.Name())
	assert.True(t, os.IsNotExist(err))

	// Idempotent: a second pass has nothing to do.
	b.Cleanup()
}
