package fileconv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWorkspaceLifecycle(t *testing.T) {
	ws, err := acquireWorkspace(quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(filepath.Base(ws.dir), "fileconv-") {
		t.Errorf("workspace dir %q lacks the fileconv prefix", ws.dir)
	}

	path, err := ws.WriteFile("input.txt", []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("read back %q, want %q", got, "payload")
	}

	dir := ws.dir
	ws.Release()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("workspace %s still exists after Release", dir)
	}
}

func TestWorkspaceReleaseIdempotent(t *testing.T) {
	ws, err := acquireWorkspace(quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	ws.Release()
	ws.Release()
}

func TestWorkspaceIsolation(t *testing.T) {
	a, err := acquireWorkspace(quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	b, err := acquireWorkspace(quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer b.Release()

	if a.dir == b.dir {
		t.Errorf("two workspaces share directory %s", a.dir)
	}
}
