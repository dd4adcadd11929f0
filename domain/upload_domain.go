package domain

import "errors"

var (
	MessageFailedUpload = "failed to upload image"

	ErrNoFileUploaded = errors.New("no file uploaded")
	ErrInvalidImage   = errors.New("file is not a valid image")
)

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
