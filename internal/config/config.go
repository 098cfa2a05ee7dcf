package config

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/knagato/posterswap/internal/errors"
)

const (
	// DefaultWorldListFile is the newline-separated list of world identifiers
	DefaultWorldListFile = "world-list.txt"

	// DefaultPoolDir holds the candidate replacement images
	DefaultPoolDir = "image-pool/portrait"

	// DefaultWorldsRoot contains one subdirectory per world
	DefaultWorldsRoot = "vrc"

	// DefaultExtension is the poster image extension
	DefaultExtension = ".png"

	// DefaultRemote is the git remote pushed to at the end of a run
	DefaultRemote = "origin"

	// DefaultCommitMessageFormat takes the world identifier
	DefaultCommitMessageFormat = "Automated poster replacement for %s"

	// DefaultAuthorName is used when GIT_AUTHOR_NAME is unset
	DefaultAuthorName = "Poster Bot"

	// DefaultAuthorEmail is used when GIT_AUTHOR_EMAIL is unset
	DefaultAuthorEmail = "poster-bot@example.com"

	// DefaultConfigFile is looked for in the repository root
	DefaultConfigFile = "posterswap.yaml"
)

// Config holds all posterswap application settings
type Config struct {
	// Repository layout
	RepoPath      string
	WorldsRoot    string
	PoolDir       string
	WorldListFile string
	Extension     string

	// Publishing
	Remote              string
	CommitMessageFormat string
	AuthorName          string
	AuthorEmail         string
	Token               string
	RepoSlug            string

	// Run behavior
	DryRun bool
	Seed   uint64 // 0 means seed from OS entropy

	// User experience
	Verbose bool

	// Debugging
	Debug   bool
	LogFile string

	// Special flags
	Version bool

	// Build metadata
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// fileConfig is the YAML shape of the optional config file. Only layout and
// publishing settings live here; credentials stay in the environment.
type fileConfig struct {
	WorldsRoot          string `yaml:"worlds_root"`
	PoolDir             string `yaml:"pool_dir"`
	WorldListFile       string `yaml:"world_list"`
	Extension           string `yaml:"extension"`
	Remote              string `yaml:"remote"`
	CommitMessageFormat string `yaml:"commit_message_format"`
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		RepoPath:            "",
		WorldsRoot:          DefaultWorldsRoot,
		PoolDir:             DefaultPoolDir,
		WorldListFile:       DefaultWorldListFile,
		Extension:           DefaultExtension,
		Remote:              DefaultRemote,
		CommitMessageFormat: DefaultCommitMessageFormat,
		AuthorName:          DefaultAuthorName,
		AuthorEmail:         DefaultAuthorEmail,
		Verbose:             true,

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromFile overlays settings from a YAML config file. The path comes
// from POSTERSWAP_CONFIG or falls back to posterswap.yaml; a missing default
// file is not an error, a missing explicitly-configured one is.
func (c *Config) LoadFromFile() error {
	path, explicit := os.LookupEnv("POSTERSWAP_CONFIG")
	if !explicit {
		path = DefaultConfigFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.NewConfigError("configFile", path, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return errors.NewConfigError("configFile", path, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if fc.WorldsRoot != "" {
		c.WorldsRoot = fc.WorldsRoot
	}
	if fc.PoolDir != "" {
		c.PoolDir = fc.PoolDir
	}
	if fc.WorldListFile != "" {
		c.WorldListFile = fc.WorldListFile
	}
	if fc.Extension != "" {
		c.Extension = fc.Extension
	}
	if fc.Remote != "" {
		c.Remote = fc.Remote
	}
	if fc.CommitMessageFormat != "" {
		c.CommitMessageFormat = fc.CommitMessageFormat
	}

	return nil
}

// LoadFromEnvironment updates config from environment variables
func (c *Config) LoadFromEnvironment() {
	c.AuthorName = getEnvString("GIT_AUTHOR_NAME", c.AuthorName)
	c.AuthorEmail = getEnvString("GIT_AUTHOR_EMAIL", c.AuthorEmail)
	c.Token = getEnvString("GITHUB_TOKEN", c.Token)
	c.RepoSlug = getEnvString("GITHUB_REPOSITORY", c.RepoSlug)
	c.Seed = getEnvUint64("POSTERSWAP_SEED", c.Seed)
	c.Verbose = getEnvBool("VERBOSE", c.Verbose)
	c.Debug = getEnvBool("DEBUG", c.Debug)
	c.LogFile = getEnvString("LOG_FILE", c.LogFile)
}

// SetupFlags sets up command-line flags to override config values
func (c *Config) SetupFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.RepoPath, "repo", c.RepoPath, "Path to repository (default: current directory)")
	fs.StringVar(&c.WorldsRoot, "worlds", c.WorldsRoot, "Directory containing per-world subdirectories")
	fs.StringVar(&c.PoolDir, "pool", c.PoolDir, "Directory of candidate replacement images")
	fs.StringVar(&c.WorldListFile, "world-list", c.WorldListFile, "Newline-separated list of world identifiers")
	fs.StringVar(&c.Extension, "ext", c.Extension, "Poster image extension")
	fs.StringVar(&c.Remote, "remote", c.Remote, "Git remote to push to")
	fs.BoolVar(&c.DryRun, "dry-run", c.DryRun, "Report what would change without copying or committing")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed for reproducible runs (0: seed from OS entropy)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Path to log file (default: ~/.local/share/posterswap/logs/posterswap-{repo-hash}.log)")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version information and exit")
}

// ParseFlags parses the command-line arguments and updates the config
func (c *Config) ParseFlags() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	c.SetupFlags(fs)

	var appArgs []string
	// Skip the program name (os.Args[0])
	if len(os.Args) > 1 {
		appArgs = os.Args[1:]
	}

	if err := fs.Parse(appArgs); err != nil {
		return errors.NewConfigError("flags", nil, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to parse command-line arguments: %v", err)))
	}

	return nil
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("repoPath", "", errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to get current directory: %v", err)))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("repoPath", c.RepoPath, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	c.RepoPath = absRepoPath

	if !strings.HasPrefix(c.Extension, ".") {
		return errors.NewConfigError("extension", c.Extension, errors.Wrap(errors.ErrInvalidConfiguration, "extension must start with a dot"))
	}

	if !strings.Contains(c.CommitMessageFormat, "%s") {
		return errors.NewConfigError("commitMessageFormat", c.CommitMessageFormat, errors.Wrap(errors.ErrInvalidConfiguration, "commit message format must contain %s for the world identifier"))
	}

	// Layout paths are interpreted relative to the repository root so the
	// tool behaves the same regardless of invocation directory.
	c.WorldsRoot = c.resolveAgainstRepo(c.WorldsRoot)
	c.PoolDir = c.resolveAgainstRepo(c.PoolDir)
	c.WorldListFile = c.resolveAgainstRepo(c.WorldListFile)

	if c.LogFile == "" {
		// Follow XDG Base Directory Specification
		logDir := os.Getenv("XDG_DATA_HOME")
		if logDir == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				logDir = filepath.Join(homeDir, ".local", "share")
			} else {
				// Fallback to the temp directory if home dir can't be determined
				logDir = os.TempDir()
			}
		}

		// Create a unique identifier for the repository
		repoHash := fmt.Sprintf("%x", sha256OfString(c.RepoPath)[:8])

		logFileDir := filepath.Join(logDir, "posterswap", "logs")
		c.LogFile = filepath.Join(logFileDir, fmt.Sprintf("posterswap-%s.log", repoHash))
	}

	return nil
}

// resolveAgainstRepo anchors a relative path at the repository root.
func (c *Config) resolveAgainstRepo(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.RepoPath, path)
}

// getEnvString returns an environment variable string or a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool returns an environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		valueLower := strings.ToLower(valueStr)
		if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
			return true
		}
		if valueLower == "false" || valueLower == "0" || valueLower == "no" {
			return false
		}
		// For any other value, fall back to default
	}
	return defaultValue
}

// getEnvUint64 returns an environment variable as uint64 or a default value
func getEnvUint64(key string, defaultValue uint64) uint64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseUint(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return defaultValue
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
