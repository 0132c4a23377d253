// internal/app/features/profile/coordinator.go
package profile

import (
	"context"
	"fmt"

	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"github.com/loomfeed/loomfeed/internal/app/system/imageref"
	"github.com/loomfeed/loomfeed/internal/app/system/inputval"
	"github.com/loomfeed/loomfeed/internal/app/system/normalize"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Uploader is the narrow asset-hosting contract: store the bytes, return the
// hosted URL. It is called at most once per update and never speculatively.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// Invalidator drops a cached rendered page. Fire-and-forget.
type Invalidator interface {
	Invalidate(ctx context.Context, path string)
}

// UpdateRequest carries the profile fields submitted by the account form.
// Image is either a hosted URL or an inline base64 data URL; Path is the UI
// path whose cached render should be invalidated after a successful update.
type UpdateRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Path     string `json:"path"`
}

// editPath is the only path whose cache is invalidated after a profile
// update; updates arriving from onboarding have nothing cached yet.
const editPath = "/profile/edit"

// Coordinator validates, resolves the image value, and performs the profile
// upsert.
type Coordinator struct {
	users      *userstore.Store
	uploads    Uploader
	revalidate Invalidator
	bioPolicy  *bluemonday.Policy
	log        *zap.Logger
}

func NewCoordinator(users *userstore.Store, uploads Uploader, revalidate Invalidator, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		users:      users,
		uploads:    uploads,
		revalidate: revalidate,
		bioPolicy:  bluemonday.StrictPolicy(),
		log:        logger,
	}
}

// UpdateUser normalizes and validates the submitted fields, uploads a newly
// captured avatar when the image value carries inline bytes, and upserts the
// user keyed on UserID with onboarded set true. Upload problems degrade
// softly: the submitted image value is persisted unchanged and the update
// still runs. Validation and store failures abort before/with nothing
// partially applied; there is no partial success.
func (c *Coordinator) UpdateUser(ctx context.Context, req UpdateRequest) error {
	username := normalize.Username(req.Username)
	name := normalize.DisplayName(req.Name)
	if err := inputval.Profile(req.UserID, username, name, req.Bio); err != nil {
		return err
	}

	image := req.Image
	if ref := imageref.Parse(req.Image); ref.Kind == imageref.InlinePending {
		url, err := c.upload(ctx, ref)
		switch {
		case err != nil:
			c.log.Warn("avatar upload failed, persisting submitted image value",
				zap.String("user_id", req.UserID),
				zap.Error(err))
		case url == "":
			c.log.Warn("avatar upload returned no URL, persisting submitted image value",
				zap.String("user_id", req.UserID))
		default:
			image = url
		}
	}

	upd := userstore.ProfileUpdate{
		Username: username,
		Name:     name,
		Bio:      c.bioPolicy.Sanitize(req.Bio),
		Image:    image,
	}
	if err := c.users.UpsertProfile(ctx, req.UserID, upd); err != nil {
		return err
	}

	if req.Path == editPath {
		c.revalidate.Invalidate(ctx, req.Path)
	}
	return nil
}

func (c *Coordinator) upload(ctx context.Context, ref imageref.Ref) (string, error) {
	if c.uploads == nil {
		return "", fmt.Errorf("no uploader configured")
	}
	if ref.Data == nil {
		return "", fmt.Errorf("inline image payload is not valid base64")
	}
	return c.uploads.Upload(ctx, ref.Data, ref.ContentType)
}
