package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}

func TestFileWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# one\n"), 0o644))

	events := make(chan string, 8)
	fw, err := NewFileWatcher(nopLogger{}, func(p string) { events <- p })
	require.NoError(t, err)
	defer fw.Stop()

	require.NoError(t, fw.Track(path))
	require.NoError(t, os.WriteFile(path, []byte("# two\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	select {
	case got := <-events:
		assert.Equal(t, abs, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event for tracked file")
	}
}

func TestFileWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "doc.md")
	sibling := filepath.Join(dir, "other.md")
	require.NoError(t, os.WriteFile(tracked, []byte("a"), 0o644))

	events := make(chan string, 8)
	fw, err := NewFileWatcher(nopLogger{}, func(p string) { events <- p })
	require.NoError(t, err)
	defer fw.Stop()

	require.NoError(t, fw.Track(tracked))
	require.NoError(t, os.WriteFile(sibling, []byte("b"), 0o644))

	select {
	case got := <-events:
		t.Fatalf("unexpected event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFileWatcherRetargets(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	first := filepath.Join(dirA, "a.md")
	second := filepath.Join(dirB, "b.md")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("b"), 0o644))

	events := make(chan string, 8)
	fw, err := NewFileWatcher(nopLogger{}, func(p string) { events <- p })
	require.NoError(t, err)
	defer fw.Stop()

	require.NoError(t, fw.Track(first))
	require.NoError(t, fw.Track(second))

	require.NoError(t, os.WriteFile(second, []byte("bb"), 0o644))

	abs, err := filepath.Abs(second)
	require.NoError(t, err)

	select {
	case got := <-events:
		assert.Equal(t, abs, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event after retarget")
	}
}
