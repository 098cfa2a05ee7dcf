// Package worlds resolves per-world poster slots and applies assignments to
// them.
//
// A world is a directory under the worlds root named by an identifier from
// the world list file. Inside it, poster slots are files matching
// poster<N><ext> where N is a positive integer with no fixed width; slots are
// ordered by N ascending.
package worlds

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/knagato/posterswap/internal/errors"
	"github.com/knagato/posterswap/internal/hash"
)

// Slot is a numbered poster position within a world directory.
type Slot struct {
	// Name is the slot's filename, e.g. "poster3.png".
	Name string

	// Number is the integer embedded in Name. Slots sort by Number.
	Number int

	// PrevHash is the fingerprint of the slot's current file contents, or
	// empty if the file is absent or unreadable. An empty PrevHash means the
	// slot carries no avoid-previous constraint.
	PrevHash string
}

// ReadList reads newline-separated world identifiers from path.
// Blank lines are ignored; there is no comment syntax.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open world list %s", path)
	}
	defer func() {
		_ = f.Close()
	}()

	var worlds []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			worlds = append(worlds, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read world list %s", path)
	}

	return worlds, nil
}

// Dir returns the directory for a world identifier under the worlds root.
func Dir(root, world string) string {
	return filepath.Join(root, world)
}

// slotPattern builds the poster filename matcher for the given extension.
func slotPattern(ext string) *regexp.Regexp {
	return regexp.MustCompile(`^poster([0-9]+)` + regexp.QuoteMeta(ext) + `$`)
}

// Slots enumerates the poster slots in worldDir, sorted by embedded number
// ascending, with each slot's current fingerprint filled in. A slot file
// that cannot be hashed is kept with an empty PrevHash since it is about to
// be overwritten anyway.
func Slots(worldDir, ext string) ([]Slot, error) {
	entries, err := os.ReadDir(worldDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read world directory %s", worldDir)
	}

	re := slotPattern(ext)

	var slots []Slot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := re.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Unreachable with the pattern above, but keep the slot out
			// rather than guess an order.
			continue
		}

		slot := Slot{Name: entry.Name(), Number: n}
		if h, err := hash.File(filepath.Join(worldDir, entry.Name())); err == nil {
			slot.PrevHash = h
		}
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Number < slots[j].Number
	})

	return slots, nil
}
