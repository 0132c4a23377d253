// internal/app/features/profile/uploader.go
package profile

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"github.com/loomfeed/loomfeed/internal/app/system/imageref"
)

// StorageUploader hosts avatars on the app's storage backend. Keys are
// date-partitioned with a uuid so replacing an avatar never overwrites the
// previous object (cached pages may still reference it).
type StorageUploader struct {
	Store   storage.Store
	BaseURL string // public URL prefix the stored keys are served under
}

// Upload stores the image bytes and returns the hosted URL.
func (u *StorageUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	ext := (imageref.Ref{Kind: imageref.InlinePending, ContentType: contentType}).Ext()
	if ext == "" {
		ext = ".bin"
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("avatars/%04d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	opts := &storage.PutOptions{ContentType: contentType}
	if err := u.Store.Put(ctx, key, bytes.NewReader(data), opts); err != nil {
		return "", fmt.Errorf("store avatar: %w", err)
	}
	return strings.TrimSuffix(u.BaseURL, "/") + "/" + key, nil
}
