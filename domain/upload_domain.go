package domain

import (
	"errors"
	"mime/multipart"
)

const (
	// MaxUploadSize is the largest accepted image, in bytes.
	MaxUploadSize int64 = 5 * 1024 * 1024

	UploadFormField = "image"
)

var (
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageFailedUploadImage  = "failed to upload image"

	ErrNoFileUploaded   = errors.New("no file uploaded")
	ErrInvalidImageType = errors.New("only JPEG and PNG images are allowed")
	ErrFileTooLarge     = errors.New("file too large, maximum size is 5 MiB")
)

type (
	UploadImageRequest struct {
		Image *multipart.FileHeader
	}

	UploadImageResponse struct {
		FilePath string `json:"filePath"`
	}
)

// IsUploadRejected reports whether err is a client-side upload rejection.
func IsUploadRejected(err error) bool {
	return errors.Is(err, ErrNoFileUploaded) ||
		errors.Is(err, ErrInvalidImageType) ||
		errors.Is(err, ErrFileTooLarge)
}
