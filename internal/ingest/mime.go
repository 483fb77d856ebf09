package ingest

import (
	"mime"
	"path/filepath"
	"strings"
)

// Extensions the vault sees in practice. The stdlib table covers web types
// only, so office and media containers are spelled out here. Anything else
// still imports; it just classifies as a generic document downstream.
var extensionTypes = map[string]string{
	".m4a":  "audio/mp4",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".csv":  "text/csv",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// TypeByPath maps a file path to a MIME type, or "unknown" when no mapping
// applies. Unknown types are permitted in the catalog.
func TypeByPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "unknown"
	}
	if mimeType, ok := extensionTypes[ext]; ok {
		return mimeType
	}
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		if base, _, err := mime.ParseMediaType(mimeType); err == nil {
			return base
		}
		return mimeType
	}
	return "unknown"
}
