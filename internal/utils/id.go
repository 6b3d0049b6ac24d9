package utils

import (
	"crypto/rand"
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GenerateSecureToken creates a cryptographically secure random token.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

var allowedImageExt = map[string]string{
	".png":  ".png",
	".jpg":  ".jpg",
	".jpeg": ".jpg",
	".gif":  ".gif",
	".webp": ".webp",
}

// ImageFilename returns a fresh, collision-free name for an uploaded image,
// keeping a normalized extension of the client's filename. ok is false when
// the extension is not an accepted image type.
func ImageFilename(original string) (name string, ok bool) {
	ext, ok := allowedImageExt[strings.ToLower(filepath.Ext(original))]
	if !ok {
		return "", false
	}
	return uuid.NewString() + ext, true
}
