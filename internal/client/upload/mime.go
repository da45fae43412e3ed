package upload

import (
	"path/filepath"
	"strings"
)

// extensionMIME maps filename extensions to MIME types for files whose
// declared type is missing or the generic placeholder. The table covers
// video and presentation formats only; notably, image extensions are
// absent, so an extension-only .jpg falls through with no type and the
// server applies its default. Extending the table is a behavior change
// that needs to be coordinated with the files service.
var extensionMIME = map[string]string{
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
	".mpg":  "video/mpeg",
	".mpeg": "video/mpeg",
	".3gp":  "video/3gpp",
	".ogv":  "video/ogg",
	".ts":   "video/mp2t",
	".vob":  "video/mpeg",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

const genericMIME = "application/octet-stream"

// ResolveMIME picks the MIME type to send: the declared type wins unless
// it is empty or the generic placeholder, in which case the extension
// table is consulted. Returns "" when nothing matches.
func ResolveMIME(filename, declared string) string {
	if declared != "" && declared != genericMIME {
		return declared
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if m, ok := extensionMIME[ext]; ok {
		return m
	}
	return declared
}
