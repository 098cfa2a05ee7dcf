package rotate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knagato/posterswap/internal/logger"
	"github.com/knagato/posterswap/internal/pool"
	"github.com/knagato/posterswap/internal/worlds"
)

// Publisher is the version-control capability the rotator drives. The real
// implementation shells out to git; tests substitute a mock.
type Publisher interface {
	// Setup configures commit identity and the authenticated remote.
	Setup(ctx context.Context) error

	// Stage adds the given paths to the index.
	Stage(ctx context.Context, paths []string) error

	// Commit records the staged changes with the given message.
	Commit(ctx context.Context, message string) error

	// Push publishes all commits made during the run.
	Push(ctx context.Context) error
}

// RotatorConfig contains configuration for a rotation run.
type RotatorConfig struct {
	// WorldsRoot is the directory containing one subdirectory per world.
	WorldsRoot string

	// PoolDir is the flat directory of candidate replacement images.
	PoolDir string

	// WorldListFile is the newline-separated list of world identifiers.
	WorldListFile string

	// Extension is the poster image extension including the dot, e.g. ".png".
	Extension string

	// CommitMessageFormat is a fmt string taking the world identifier.
	CommitMessageFormat string

	// DryRun reports what would change without copying files or running git.
	DryRun bool
}

// Rotator walks the world list and replaces each world's posters with a
// fresh selection from the pool, committing per world and pushing once at
// the end of the run.
type Rotator struct {
	config    RotatorConfig
	logger    logger.Logger
	publisher Publisher
	rng       RandomSource
	applier   *worlds.Applier
	startTime time.Time

	// Run outcome counters for the summary.
	replaced  int
	skipped   int
	exhausted int
	commits   int
}

// NewRotator creates a Rotator with the default random source.
func NewRotator(config RotatorConfig, log logger.Logger, publisher Publisher) *Rotator {
	return NewRotatorWithDeps(config, log, publisher, DefaultRNG())
}

// NewRotatorWithDeps creates a Rotator with a custom random source.
func NewRotatorWithDeps(config RotatorConfig, log logger.Logger, publisher Publisher, rng RandomSource) *Rotator {
	return &Rotator{
		config:    config,
		logger:    log,
		publisher: publisher,
		rng:       rng,
		applier:   worlds.NewApplier(config.PoolDir, config.DryRun, log),
		startTime: time.Now(),
	}
}

// Run performs one full rotation pass: pool catalog, world list, per-world
// assignment and apply, commit per changed world, one push at the end.
// Worlds are processed strictly in list order, one at a time.
func (r *Rotator) Run(ctx context.Context) error {
	r.startTime = time.Now()

	if !r.config.DryRun {
		if err := r.publisher.Setup(ctx); err != nil {
			return err
		}
	}

	worldList, err := worlds.ReadList(r.config.WorldListFile)
	if err != nil {
		return err
	}
	r.logger.Info("loaded %d world(s) from %s", len(worldList), r.config.WorldListFile)

	catalog, err := pool.Load(r.config.PoolDir, r.config.Extension)
	if err != nil {
		return err
	}
	r.logger.Info("pool catalog holds %d image(s)", len(catalog))

	for _, world := range worldList {
		if err := r.processWorld(ctx, world, catalog); err != nil {
			return err
		}
	}

	if r.config.DryRun {
		return nil
	}
	return r.publisher.Push(ctx)
}

// processWorld assigns and applies replacements for a single world.
// Skips (missing directory, no slots, exhausted pool) return nil; only git
// failures propagate and abort the run.
func (r *Rotator) processWorld(ctx context.Context, world string, catalog []pool.Image) error {
	worldDir := worlds.Dir(r.config.WorldsRoot, world)

	info, err := os.Stat(worldDir)
	if err != nil || !info.IsDir() {
		r.logger.InfoToUser("World directory not found: %s", worldDir)
		r.skipped++
		return nil
	}

	slots, err := worlds.Slots(worldDir, r.config.Extension)
	if err != nil {
		r.logger.Error("Failed to enumerate posters in %s: %v", worldDir, err)
		r.skipped++
		return nil
	}
	if len(slots) == 0 {
		r.logger.InfoToUser("No poster files found in %s", worldDir)
		r.skipped++
		return nil
	}

	assignment, err := Assign(slots, catalog, r.rng)
	if err != nil {
		r.logger.Error("Not enough unique images in pool to replace all posters for %s", world)
		r.exhausted++
		return nil
	}
	for _, slotName := range assignment.Fallbacks {
		r.logger.WarningToUser("Not enough unique images in pool to replace poster %s for %s (may repeat old image)", slotName, world)
	}

	changed := r.applier.Apply(worldDir, world, slots, assignment.Chosen)
	if changed == 0 {
		r.skipped++
		return nil
	}
	r.replaced++

	if r.config.DryRun {
		return nil
	}

	paths := make([]string, len(slots))
	for i, slot := range slots {
		paths[i] = filepath.Join(worldDir, slot.Name)
	}
	if err := r.publisher.Stage(ctx, paths); err != nil {
		return err
	}
	if err := r.publisher.Commit(ctx, fmt.Sprintf(r.config.CommitMessageFormat, world)); err != nil {
		return err
	}
	r.commits++

	return nil
}

// PrintSummary prints per-run outcome totals.
func (r *Rotator) PrintSummary() {
	duration := time.Since(r.startTime)

	r.logger.StatusMessage("")
	r.logger.StatusMessage("---------------------------------------------")
	r.logger.StatusMessage("📊 posterswap Run Summary")
	r.logger.StatusMessage("---------------------------------------------")
	r.logger.StatusMessage("🖼️  Worlds replaced: %d", r.replaced)
	r.logger.StatusMessage("⏭️  Worlds skipped: %d", r.skipped)
	r.logger.StatusMessage("🚫 Worlds with exhausted pool: %d", r.exhausted)
	r.logger.StatusMessage("✅ Commits created: %d", r.commits)
	r.logger.StatusMessage("⏱️  Run duration: %ds", int(duration.Seconds()))
	r.logger.StatusMessage("---------------------------------------------")
}
