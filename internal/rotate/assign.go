package rotate

import (
	"github.com/knagato/posterswap/internal/errors"
	"github.com/knagato/posterswap/internal/pool"
	"github.com/knagato/posterswap/internal/worlds"
)

// Assignment is the result of selecting pool images for one world's slots.
type Assignment struct {
	// Chosen holds one pool image per slot, in slot order.
	Chosen []pool.Image

	// Fallbacks lists the names of slots whose avoid-previous constraint had
	// to be relaxed because no unused candidate with a different hash was
	// left. The caller surfaces these as warnings.
	Fallbacks []string
}

// Assign selects a pool image for every slot such that no two slots in the
// world receive images with the same content hash.
//
// Candidates are shuffled once, then each slot is filled in order with two
// passes over the shuffled list: the primary pass also rejects candidates
// whose hash equals the slot's previous hash; the fallback pass drops that
// constraint and records the slot in Fallbacks. A slot with an empty
// previous hash has no avoid-previous constraint, so any unused candidate
// satisfies its primary pass.
//
// If a slot cannot be filled by either pass, the pool has fewer distinct
// hashes than the world has slots; Assign returns ErrPoolExhausted and the
// partial selection is discarded. Selection is scoped to this call: nothing
// carries over between worlds.
func Assign(slots []worlds.Slot, catalog []pool.Image, rng RandomSource) (Assignment, error) {
	available := make([]pool.Image, len(catalog))
	copy(available, catalog)
	shuffle(available, rng)

	usedHashes := make(map[string]bool, len(slots))
	result := Assignment{Chosen: make([]pool.Image, 0, len(slots))}

	for _, slot := range slots {
		img, ok := pick(available, usedHashes, slot.PrevHash)
		if !ok {
			img, ok = pick(available, usedHashes, "")
			if !ok {
				return Assignment{}, errors.Wrapf(errors.ErrPoolExhausted,
					"no unused image left for %s", slot.Name)
			}
			result.Fallbacks = append(result.Fallbacks, slot.Name)
		}
		usedHashes[img.Hash] = true
		result.Chosen = append(result.Chosen, img)
	}

	return result, nil
}

// pick scans candidates in order and returns the first whose hash is unused
// and, when avoidHash is non-empty, differs from it.
func pick(candidates []pool.Image, used map[string]bool, avoidHash string) (pool.Image, bool) {
	for _, c := range candidates {
		if used[c.Hash] {
			continue
		}
		if avoidHash != "" && c.Hash == avoidHash {
			continue
		}
		return c, true
	}
	return pool.Image{}, false
}

// shuffle performs a Fisher-Yates shuffle in place.
func shuffle(images []pool.Image, rng RandomSource) {
	for i := len(images) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		images[i], images[j] = images[j], images[i]
	}
}
