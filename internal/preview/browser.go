// Package preview opens rendered documents in the system browser via
// throwaway HTML files.
package preview

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/untreu2/mdhtml/internal/logger"
)

// Browser writes rendered HTML to temporary files and hands them to the
// host's default .html handler. Files accumulate until Cleanup so the
// browser never races a deletion.
type Browser struct {
	logger logger.Logger

	mu        sync.Mutex
	tempFiles []string
}

func NewBrowser(log logger.Logger) *Browser {
	return &Browser{logger: log}
}

// Open writes the document to a temp file and launches the system browser
// on it.
func (b *Browser) Open(htmlDocument string) error {
	file, err := os.CreateTemp("", "mdhtml-*.html")
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}

	if _, err := file.WriteString(htmlDocument); err != nil {
		file.Close()
		os.Remove(file.Name())
		return fmt.Errorf("writing preview file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return fmt.Errorf("closing preview file: %w", err)
	}

	b.mu.Lock()
	b.tempFiles = append(b.tempFiles, file.Name())
	b.mu.Unlock()

	b.logger.Debug("Preview", "preview file written", map[string]interface{}{
		"path": file.Name(),
		"size": len(htmlDocument),
	})

	if err := openInBrowser(file.Name()); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}

// Cleanup removes all preview files written so far.
func (b *Browser) Cleanup() {
	b.mu.Lock()
	files := b.tempFiles
	b.tempFiles = nil
	b.mu.Unlock()

	for _, path := range files {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			b.logger.Warning("Preview", "temp file removal failed", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}

	if len(files) > 0 {
		b.logger.Debug("Preview", "temp files removed", map[string]interface{}{
			"count": len(files),
		})
	}
}

func openInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	cmd.Stdout, cmd.Stderr, cmd.Stdin = nil, nil, nil
	return cmd.Start()
}
