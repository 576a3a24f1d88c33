package storage

import (
	"context"
	"io"
)

// AllowImage lists the content types accepted for entry images.
var AllowImage = []string{"image/jpeg", "image/png"}

// ImageStorage persists an uploaded image under fileName and returns a
// reference the UI can use directly as an entry's imageRef.
type ImageStorage interface {
	Save(ctx context.Context, fileName, contentType string, body io.ReadSeeker) (string, error)
}

func IsAllowed(contentType string, allowed ...string) bool {
	for _, a := range allowed {
		if a == contentType {
			return true
		}
	}
	return false
}
