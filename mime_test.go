package fileconv

import (
	"strings"
	"testing"
)

func TestContentTypeForExt(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{"mp3", "audio/mpeg"},
		{"gif", "image/gif"},
		{"pdf", "application/pdf"},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"xyz", "application/octet-stream"},
		{"", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := contentTypeForExt(tt.ext); got != tt.want {
			t.Errorf("contentTypeForExt(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestSniffContentType(t *testing.T) {
	if got := sniffContentType([]byte("%PDF-1.4\n")); !strings.HasPrefix(got, "application/pdf") {
		t.Errorf("sniffContentType(pdf header) = %q", got)
	}
	if got := sniffContentType([]byte("just some text")); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("sniffContentType(text) = %q", got)
	}
}
