// Package pool builds the catalog of candidate replacement images.
package pool

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knagato/posterswap/internal/errors"
	"github.com/knagato/posterswap/internal/hash"
)

// Image is a single candidate replacement image in the pool.
// Uniqueness is by Name; multiple images may share a Hash, in which case they
// are interchangeable for assignment purposes.
type Image struct {
	// Name is the image's filename within the pool directory.
	Name string

	// Hash is the hex-encoded SHA-256 fingerprint of the image contents.
	Hash string
}

// Path returns the image's full path under the given pool directory.
func (i Image) Path(poolDir string) string {
	return filepath.Join(poolDir, i.Name)
}

// Load enumerates the pool directory and fingerprints every file whose name
// ends in ext (case-insensitive). The returned order follows the directory
// listing; callers that need randomized order shuffle independently.
func Load(dir, ext string) ([]Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pool directory %s", dir)
	}

	loweredExt := strings.ToLower(ext)

	var images []Image
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), loweredExt) {
			continue
		}

		h, err := hash.File(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fingerprint pool image %s", name)
		}
		images = append(images, Image{Name: name, Hash: h})
	}

	return images, nil
}
