package validation

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// imageExtensions is the allow-list for uploaded media. Everything else is
// rejected regardless of what the client claims about the content.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// AllowedImageName reports whether a caller-supplied filename carries an
// accepted image extension. The match is case-insensitive.
func AllowedImageName(filename string) bool {
	if filename == "" {
		return false
	}
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}

// LooksLikeImage sniffs the leading bytes and reports whether the content
// is actually an image. Extensions can be faked, magic numbers cannot.
func LooksLikeImage(head []byte) bool {
	return strings.HasPrefix(mimetype.Detect(head).String(), "image/")
}
