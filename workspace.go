package fileconv

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// workspace is an isolated scratch directory for one strategy invocation.
// It is never shared between requests and never reused; the invocation that
// acquired it must call Release on every exit path.
type workspace struct {
	dir string
	log *slog.Logger
}

// acquireWorkspace creates a uniquely-named scratch directory under the OS
// temp root.
func acquireWorkspace(log *slog.Logger) (*workspace, error) {
	dir, err := os.MkdirTemp("", "fileconv-*")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &workspace{dir: dir, log: log}, nil
}

// Path returns an absolute path for name inside the workspace.
func (w *workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// WriteFile places data into the workspace under name.
func (w *workspace) WriteFile(name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// Release removes the workspace recursively. Cleanup failures are logged and
// swallowed: they must never mask the conversion result.
func (w *workspace) Release() {
	if w == nil || w.dir == "" {
		return
	}
	if err := os.RemoveAll(w.dir); err != nil {
		w.log.Warn("workspace cleanup failed", "dir", w.dir, "error", err)
	}
	w.dir = ""
}
