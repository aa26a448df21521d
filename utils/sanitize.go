package utils

import "github.com/microcosm-cc/bluemonday"

// Post content and short descriptions arrive as author-supplied HTML; the
// UGC policy keeps basic formatting while stripping script vectors.
var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans author-supplied HTML before it is persisted.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
