// Package storage persists uploaded profile photos. Two backends are
// supported: S3-compatible object storage (AWS S3, Wasabi) and a local media
// directory served by the API itself.
package storage

import "context"

// PhotoStore saves an uploaded photo and returns a URL (absolute for S3,
// path-relative like /media/... for local storage).
type PhotoStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
}
