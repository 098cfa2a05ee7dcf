// Package posterswap rotates poster images for VRChat worlds.
//
// For each world listed in world-list.txt, posterswap replaces the poster
// images under the worlds root with fresh picks from a shared image pool,
// then commits each changed world and pushes once at the end of the run.
// Selection is randomized per world while guaranteeing that no image appears
// twice within a world, and avoiding (when the pool allows) giving a poster
// the same image it already shows.
//
// # Quick Start
//
//	# From the asset repository root
//	posterswap
//
//	# See what would change without touching anything
//	posterswap -dry-run
//
//	# Reproducible selection
//	posterswap -seed 42
//
// # Key Features
//
//   - Content-hash duplicate detection: images are compared by SHA-256
//     fingerprint, so renamed copies of the same image never pair up in one
//     world
//   - Soft avoid-previous policy: a poster only repeats its current image
//     when the pool leaves no alternative, and that relaxation is logged
//   - Per-world commits in list order, one push at the end, with commit
//     identity and an authenticated remote taken from the environment
//     (GIT_AUTHOR_NAME, GIT_AUTHOR_EMAIL, GITHUB_TOKEN, GITHUB_REPOSITORY)
//   - Worlds with a missing directory, no recognized posters, or too small a
//     pool are skipped without failing the run; only git failures abort
//
// Layout settings (worlds root, pool directory, world list, extension) come
// from an optional posterswap.yaml in the working directory (or the path in
// POSTERSWAP_CONFIG), overridable via environment variables and flags.
package posterswap
