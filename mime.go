package fileconv

import "github.com/gabriel-vasile/mimetype"

// contentTypeByExt maps output extensions to outbound content types.
// Unrecognized extensions fall back to a generic binary type.
var contentTypeByExt = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"aac":  "audio/aac",
	"flac": "audio/flac",
	"m4a":  "audio/mp4",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"mkv":  "video/x-matroska",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"avif": "image/avif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"pdf":  "application/pdf",
	"txt":  "text/plain",
	"md":   "text/markdown",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// contentTypeForExt returns the content type for an output extension.
func contentTypeForExt(ext string) string {
	if ct, ok := contentTypeByExt[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// sniffContentType detects the MIME type of raw input bytes. The result is
// used for logs and diagnostics only; classification stays extension-driven.
func sniffContentType(data []byte) string {
	return mimetype.Detect(data).String()
}
