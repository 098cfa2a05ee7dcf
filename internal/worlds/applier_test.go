package worlds

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knagato/posterswap/internal/hash"
	"github.com/knagato/posterswap/internal/logger"
	"github.com/knagato/posterswap/internal/pool"
)

func newTestLogger() (*logger.DefaultLogger, *bytes.Buffer) {
	var out bytes.Buffer
	return logger.NewWithOutput(false, "", false, &out, &out), &out
}

func setupApplyFixture(t *testing.T) (poolDir, worldDir string, slots []Slot, chosen []pool.Image) {
	t.Helper()

	root := t.TempDir()
	poolDir = filepath.Join(root, "pool")
	worldDir = filepath.Join(root, "world")
	for _, dir := range []string{poolDir, worldDir} {
		if err := os.Mkdir(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	if err := os.WriteFile(filepath.Join(poolDir, "new1.png"), []byte("fresh one"), 0644); err != nil {
		t.Fatalf("failed to write pool image: %v", err)
	}
	if err := os.WriteFile(filepath.Join(poolDir, "new2.png"), []byte("fresh two"), 0644); err != nil {
		t.Fatalf("failed to write pool image: %v", err)
	}
	if err := os.WriteFile(filepath.Join(worldDir, "poster1.png"), []byte("stale one"), 0644); err != nil {
		t.Fatalf("failed to write poster: %v", err)
	}
	if err := os.WriteFile(filepath.Join(worldDir, "poster2.png"), []byte("stale two"), 0644); err != nil {
		t.Fatalf("failed to write poster: %v", err)
	}

	slots, err := Slots(worldDir, ".png")
	if err != nil {
		t.Fatalf("Slots returned unexpected error: %v", err)
	}

	catalog, err := pool.Load(poolDir, ".png")
	if err != nil {
		t.Fatalf("pool.Load returned unexpected error: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 pool images, got %d", len(catalog))
	}

	return poolDir, worldDir, slots, catalog
}

func TestApplyOverwritesSlots(t *testing.T) {
	t.Parallel()

	poolDir, worldDir, slots, chosen := setupApplyFixture(t)
	log, _ := newTestLogger()

	applier := NewApplier(poolDir, false, log)
	changed := applier.Apply(worldDir, "wld_test", slots, chosen)

	if changed != 2 {
		t.Fatalf("expected 2 replacements, got %d", changed)
	}

	for i, slot := range slots {
		got, err := hash.File(filepath.Join(worldDir, slot.Name))
		if err != nil {
			t.Fatalf("failed to hash %s: %v", slot.Name, err)
		}
		if got != chosen[i].Hash {
			t.Errorf("%s: expected contents of %s, hashes differ", slot.Name, chosen[i].Name)
		}
	}
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	t.Parallel()

	poolDir, worldDir, slots, chosen := setupApplyFixture(t)
	log, out := newTestLogger()

	before := make([]string, len(slots))
	for i, slot := range slots {
		h, err := hash.File(filepath.Join(worldDir, slot.Name))
		if err != nil {
			t.Fatalf("failed to hash %s: %v", slot.Name, err)
		}
		before[i] = h
	}

	applier := NewApplier(poolDir, true, log)
	changed := applier.Apply(worldDir, "wld_test", slots, chosen)

	if changed != 0 {
		t.Fatalf("dry run reported %d replacements", changed)
	}
	if !strings.Contains(out.String(), "Would replace") {
		t.Errorf("expected a dry-run report, got %q", out.String())
	}

	for i, slot := range slots {
		after, err := hash.File(filepath.Join(worldDir, slot.Name))
		if err != nil {
			t.Fatalf("failed to hash %s: %v", slot.Name, err)
		}
		if after != before[i] {
			t.Errorf("%s changed during a dry run", slot.Name)
		}
	}
}

func TestApplyMissingSourceSkipsFile(t *testing.T) {
	t.Parallel()

	poolDir, worldDir, slots, chosen := setupApplyFixture(t)
	log, _ := newTestLogger()

	// Remove one source after cataloging, leaving a dangling chosen image.
	if err := os.Remove(filepath.Join(poolDir, chosen[0].Name)); err != nil {
		t.Fatalf("failed to remove pool image: %v", err)
	}

	applier := NewApplier(poolDir, false, log)
	changed := applier.Apply(worldDir, "wld_test", slots, chosen)

	if changed != 1 {
		t.Fatalf("expected 1 replacement with one source missing, got %d", changed)
	}

	// The slot whose source vanished keeps its old contents.
	got, err := hash.File(filepath.Join(worldDir, slots[0].Name))
	if err != nil {
		t.Fatalf("failed to hash %s: %v", slots[0].Name, err)
	}
	if got != slots[0].PrevHash {
		t.Errorf("slot with missing source was modified")
	}
}
