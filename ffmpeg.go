package fileconv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Transcoder is the general path-based media conversion provider: it reads
// the input file, writes the output file, and reports failure with the
// encoder's own diagnostics.
type Transcoder interface {
	// Available reports whether the underlying engine can be invoked.
	Available() bool
	// Transcode converts inputPath into outputPath, applying args between
	// the input and output arguments.
	Transcode(ctx context.Context, inputPath, outputPath string, args []string) error
}

// ffmpegTranscoder shells out to an ffmpeg binary.
type ffmpegTranscoder struct {
	path string
}

// NewFFmpegTranscoder returns a Transcoder backed by the given ffmpeg
// binary, or by binary discovery when path is empty.
func NewFFmpegTranscoder(path string) Transcoder {
	if path == "" {
		path, _ = findBinary("ffmpeg")
	}
	return &ffmpegTranscoder{path: path}
}

func (t *ffmpegTranscoder) Available() bool {
	return t.path != ""
}

func (t *ffmpegTranscoder) Transcode(ctx context.Context, inputPath, outputPath string, args []string) error {
	if t.path == "" {
		return fmt.Errorf("ffmpeg binary not found")
	}

	cmdArgs := append([]string{"-y", "-i", inputPath}, args...)
	cmdArgs = append(cmdArgs, outputPath)

	cmd := exec.CommandContext(ctx, t.path, cmdArgs...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("ffmpeg failed: %w (stderr: %s)", err, lastStderrLines(stderr.String(), 4))
	}
	return nil
}

// lastStderrLines trims ffmpeg's banner-heavy stderr down to the lines that
// actually explain the failure.
func lastStderrLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// findBinary searches for an executable: a bundled ./bin directory next to
// the executable, then ./bin under the working directory, then PATH.
func findBinary(name string) (string, bool) {
	if runtime.GOOS == "windows" && filepath.Ext(name) != ".exe" {
		name += ".exe"
	}

	if execPath, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(execPath), "bin", name)
		if _, err := os.Stat(bundled); err == nil {
			return bundled, true
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, "bin", name)
		if _, err := os.Stat(local); err == nil {
			return local, true
		}
	}
	if systemPath, err := exec.LookPath(name); err == nil {
		return systemPath, true
	}
	return "", false
}
