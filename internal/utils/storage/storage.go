package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Upload targets. Each kind maps to its own directory (or key prefix) so
// recipe images and step images never mix.
const (
	KindRecipe     = "recipe"
	KindRecipeStep = "recipestep"
)

type Storage interface {
	// Save writes the (already normalized) image and returns the public URL
	// it will be served under.
	Save(ctx context.Context, kind string, filename string, r io.Reader, size int64) (string, error)
	// Remove deletes a previously saved image by its public URL. A missing
	// file is not an error; callers treat removal as best-effort.
	Remove(ctx context.Context, imageURL string) error
}

// GenerateFilename produces a collision-resistant name from the upload
// timestamp plus a random suffix. Re-uploads always get a fresh name.
func GenerateFilename() string {
	return fmt.Sprintf("%d-%d.jpg", time.Now().UnixMilli(), rand.Int63n(1_000_000_000))
}
