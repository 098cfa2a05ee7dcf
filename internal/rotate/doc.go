// Package rotate selects and applies poster replacements.
//
// The package has two layers. Assign is the selection engine: given one
// world's slots and the pool catalog, it produces a randomized assignment in
// which no content hash appears twice and, when the pool allows, no slot
// keeps its previous image. The Rotator is the run driver: it walks the
// world list in order, invokes Assign per world, applies complete
// assignments to disk, and drives the Publisher (commit per changed world,
// one push at the end).
//
// Selection state is scoped to a single world. Nothing chosen for one world
// constrains the next; two worlds may well end up showing the same image.
package rotate
