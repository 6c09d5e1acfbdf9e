package storage

import (
	"context"
	"time"
)

// PhotoStorage resolves photo references attached to ratings. Uploads happen
// elsewhere; this side only checks that a reference points at a stored object
// and hands out temporary download links.
type PhotoStorage interface {
	Exists(ctx context.Context, ref string) (bool, error)

	PresignedURL(ctx context.Context, ref string, expiry time.Duration) (string, error)
}
