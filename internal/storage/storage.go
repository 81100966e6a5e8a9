package storage

import (
	"context"
)

// Prefix under which profile images are stored on the media host.
const ProfilePrefix = "profiles"

// UploadedObject describes a file stored on the media host.
type UploadedObject struct {
	Key         string // Object key inside the bucket
	URL         string // Public URL clients can fetch the file from
	ContentType string
}

// MediaHost defines the object-storage operations the API relies on.
type MediaHost interface {
	// Upload sends the file at localPath to the media host under a new,
	// unique key and returns where it ended up. The local file is not removed.
	Upload(ctx context.Context, localPath string) (*UploadedObject, error)

	// DeleteObject removes an object from the media host.
	DeleteObject(ctx context.Context, objectKey string) error
}
