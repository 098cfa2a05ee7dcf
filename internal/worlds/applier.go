package worlds

import (
	"io"
	"os"
	"path/filepath"

	"github.com/knagato/posterswap/internal/hash"
	"github.com/knagato/posterswap/internal/logger"
	"github.com/knagato/posterswap/internal/pool"
)

// Applier materializes a complete assignment by overwriting each slot's file
// with the chosen pool image's bytes.
//
// A copy failure is logged and that slot is left untouched; it does not abort
// the world or the run. This means a world can end up partially applied — an
// accepted inconsistency risk, since the alternative (aborting mid-world)
// leaves the same mixed state.
type Applier struct {
	poolDir string
	dryRun  bool
	logger  logger.Logger
}

// NewApplier creates an Applier that copies out of poolDir.
// When dryRun is set, Apply reports what would change without touching files.
func NewApplier(poolDir string, dryRun bool, log logger.Logger) *Applier {
	return &Applier{
		poolDir: poolDir,
		dryRun:  dryRun,
		logger:  log,
	}
}

// Apply overwrites each slot in worldDir with the corresponding chosen image.
// slots and chosen must have equal length. It returns the number of slots
// actually replaced.
func (a *Applier) Apply(worldDir, world string, slots []Slot, chosen []pool.Image) int {
	changed := 0
	for i, img := range chosen {
		src := img.Path(a.poolDir)
		dst := filepath.Join(worldDir, slots[i].Name)

		if a.dryRun {
			a.logger.InfoToUser("[%s] Would replace %s with %s", world, slots[i].Name, img.Name)
			continue
		}

		a.logger.Info("copying %s -> %s", src, dst)
		if err := a.copyFile(src, dst); err != nil {
			a.logger.Error("Failed to copy %s to %s: %v", src, dst, err)
			continue
		}

		if after, err := hash.File(dst); err == nil {
			a.logger.Info("replaced %s: before=%s after=%s", dst, slots[i].PrevHash, after)
		}
		a.logger.InfoToUser("[%s] Replaced %s with %s", world, slots[i].Name, img.Name)
		changed++
	}
	return changed
}

// copyFile streams src's bytes over dst, truncating any existing file.
// The destination gets the source's permission bits; mtime is not preserved.
func (a *Applier) copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
