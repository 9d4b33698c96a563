// Package storage abstracts the object store holding preset images and
// staged uploads. The service assumes the bucket's objects are publicly
// readable, so URL construction is pure string work.
package storage

import (
	"context"
	"fmt"
	"time"
)

// ObjectInfo describes one stored object.
type ObjectInfo struct {
	Path    string
	Created time.Time
}

// Provider is the object-store surface the bot needs. All operations act
// within one configured bucket. Upload and Copy overwrite existing objects.
type Provider interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	Copy(ctx context.Context, src, dst string) error
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

// PublicURL returns the conventional public URL for an object. No network
// call; correctness relies on the bucket being publicly readable.
func PublicURL(bucket, path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, path)
}
