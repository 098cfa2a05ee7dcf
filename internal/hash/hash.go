// Package hash computes content fingerprints for image files.
//
// A fingerprint is the hex-encoded SHA-256 digest of a file's bytes. Two pool
// images with equal fingerprints are treated as the same image for assignment
// purposes, regardless of filename.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/knagato/posterswap/internal/errors"
)

// chunkSize is the read buffer used when streaming file contents through the
// digest. Files are never loaded into memory whole.
const chunkSize = 8192

// File returns the hex-encoded SHA-256 digest of the file at path.
// The file is streamed in fixed-size chunks. An unreadable path returns an
// error; the caller decides whether that is fatal.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s for hashing", path)
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", errors.Wrapf(err, "failed to read %s for hashing", path)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
