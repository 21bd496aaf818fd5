package constants

import "strings"

// ImageExtensions holds the photo formats the vision channel can be handed
// directly (lowercase, without '.').
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// TranscriptExtensions holds the plain-text formats the watcher ingests.
var TranscriptExtensions = map[string]struct{}{
	"txt": {},
	"ocr": {},
}

// ImageConfidenceThreshold: below this transcript confidence the vision
// request attaches the original photo alongside the text.
const ImageConfidenceThreshold float32 = 0.75

// MaxVisionMBDefault caps the size of images attached to vision requests.
const MaxVisionMBDefault = 20

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageExt reports whether a normalized extension is an attachable photo.
func IsImageExt(ext string) bool {
	_, ok := ImageExtensions[NormalizeExt(ext)]
	return ok
}
