package catalog

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/vestia-market/vestia-cli/internal/domain"
)

// MaxImageBytes caps uploads at 5 MiB, matching the API's own limit.
const MaxImageBytes = 5 * 1024 * 1024

// ValidateImage checks the file before any network call: the MIME type
// inferred from the extension must be image/*, and the size must not exceed
// MaxImageBytes.
func ValidateImage(filename string, size int64) error {
	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if !strings.HasPrefix(mediaType, "image/") {
		return &domain.ValidationError{Field: "image", Message: "must be an image file"}
	}
	if size > MaxImageBytes {
		return &domain.ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("must not exceed %d MiB", MaxImageBytes/(1024*1024)),
		}
	}
	return nil
}
