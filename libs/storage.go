package libs

import (
	"context"
	"mime/multipart"
)

// PlaceholderImage is the shared default reference used when a product has no
// uploaded image. It is never retired.
const PlaceholderImage = "placeholder.svg"

const placeholderURL = "/static/images/" + PlaceholderImage

// ImageStore owns the bytes behind a product's image reference. Exactly one
// implementation is active per process, picked from config at startup.
type ImageStore interface {
	// Save persists the upload and returns the reference to store on the row.
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
	// Remove retires a reference that no row points at anymore.
	Remove(ctx context.Context, ref string) error
	// Placeholder returns the reference used when no image was supplied.
	Placeholder() string
	// Resolve maps a stored reference to the URL templates should render.
	Resolve(ref string) string
}
