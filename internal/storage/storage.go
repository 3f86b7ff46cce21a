package storage

import (
	"net/url"
	"strings"
)

// PublicBucket resolves public download URLs for objects in a single
// bucket. Files are uploaded out of band; this system only hands out
// links.
type PublicBucket struct {
	baseURL string
	bucket  string
}

func NewPublicBucket(baseURL, bucket string) *PublicBucket {
	return &PublicBucket{
		baseURL: strings.TrimRight(baseURL, "/"),
		bucket:  bucket,
	}
}

// PublicURL returns the public URL for an object path within the bucket.
func (b *PublicBucket) PublicURL(objectPath string) string {
	parts := strings.Split(strings.TrimLeft(objectPath, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return b.baseURL + "/" + url.PathEscape(b.bucket) + "/" + strings.Join(parts, "/")
}
