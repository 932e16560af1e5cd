package service

import "context"

// Upload is the result of storing one image blob.
type Upload struct {
	URL    string `json:"url"`
	Key    string `json:"public_id"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"`
}

// ImageStorage abstracts the external image host. Size and MIME validation
// happen before these calls, at the delivery layer.
type ImageStorage interface {
	// Store writes an image blob under a folder hint and returns its public
	// URL and deletion key.
	Store(ctx context.Context, data []byte, folder, name string) (*Upload, error)

	// Delete removes a previously stored image by its key.
	Delete(ctx context.Context, key string) error
}
