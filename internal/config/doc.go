// Package config manages posterswap application settings.
//
// Settings are resolved in a fixed precedence order: built-in defaults, the
// optional posterswap.yaml file, environment variables, then command-line
// flags. Finalize validates the result and derives paths (absolute repo
// path, layout paths anchored at the repo root, the default debug log file).
//
// The git credential values (GIT_AUTHOR_NAME, GIT_AUTHOR_EMAIL,
// GITHUB_TOKEN, GITHUB_REPOSITORY) come from the environment only; they are
// never read from the YAML file.
package config
