package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/knagato/posterswap/internal/config"
	internalErrors "github.com/knagato/posterswap/internal/errors"
	"github.com/knagato/posterswap/internal/git"
	"github.com/knagato/posterswap/internal/logger"
	"github.com/knagato/posterswap/internal/rotate"
)

// Rotator performs the poster rotation run
type Rotator interface {
	Run(ctx context.Context) error
	PrintSummary()
}

// Logger alias to logger.Logger
type Logger = logger.Logger

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Config *config.Config

	// Optional components
	Logger    Logger
	Publisher rotate.Publisher
	Rotator   Rotator

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	Exit         func(code int)
	ExecLookPath func(file string) (string, error)
	IsRepository func(string) bool
}

// App is the main posterswap application
type App struct {
	Config    *config.Config
	Logger    Logger
	Publisher rotate.Publisher
	Rotator   Rotator

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	exit         func(code int)
	execLookPath func(file string) (string, error)
	isRepository func(string) bool
}

// NewDefaultApp creates an App with standard dependencies
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo

	opts := AppOptions{
		Config:       cfg,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Exit:         os.Exit,
		ExecLookPath: exec.LookPath,
		IsRepository: git.IsRepository,
	}

	return NewApp(opts)
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:    opts.Config,
		Logger:    opts.Logger,
		Publisher: opts.Publisher,
		Rotator:   opts.Rotator,
		Stdout:    opts.Stdout,
		Stderr:    opts.Stderr,

		exit:         opts.Exit,
		execLookPath: opts.ExecLookPath,
		isRepository: opts.IsRepository,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.isRepository == nil {
		app.isRepository = git.IsRepository
	}

	return app
}

// Initialize sets up components not provided during construction
func (a *App) Initialize() error {
	if err := a.Config.Finalize(); err != nil {
		// Config.Finalize() already returns a properly wrapped error
		if internalErrors.Is(err, internalErrors.ErrInvalidConfiguration) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.New(a.Config.Debug, a.Config.LogFile, a.Config.Verbose)
	}

	if a.Publisher == nil {
		a.Publisher = git.NewPublisher(git.PublisherConfig{
			RepoPath:    a.Config.RepoPath,
			Remote:      a.Config.Remote,
			AuthorName:  a.Config.AuthorName,
			AuthorEmail: a.Config.AuthorEmail,
			Token:       a.Config.Token,
			RepoSlug:    a.Config.RepoSlug,
		}, a.Logger)
	}

	if a.Rotator == nil {
		rotatorConfig := rotate.RotatorConfig{
			WorldsRoot:          a.Config.WorldsRoot,
			PoolDir:             a.Config.PoolDir,
			WorldListFile:       a.Config.WorldListFile,
			Extension:           a.Config.Extension,
			CommitMessageFormat: a.Config.CommitMessageFormat,
			DryRun:              a.Config.DryRun,
		}
		if a.Config.Seed != 0 {
			a.Rotator = rotate.NewRotatorWithDeps(rotatorConfig, a.Logger, a.Publisher, rotate.NewSeededRNG(a.Config.Seed))
		} else {
			a.Rotator = rotate.NewRotator(rotatorConfig, a.Logger, a.Publisher)
		}
	}

	return nil
}

// Run executes the application with the given context.
// Handles special flags and runs the rotation pass.
func (a *App) Run(ctx context.Context) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	if a.Config.Version {
		a.ShowVersion()
		return nil
	}

	// Ensure the logger is flushed even on early error paths
	defer func() {
		if err := a.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
		}
	}()

	// Verify prerequisites
	if err := a.checkRequiredCommands(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v. Please install it and try again.\n", err)
		return err
	}

	if !a.isRepository(a.Config.RepoPath) {
		return internalErrors.ErrNotGitRepository
	}
	a.Logger.Info("Git repository verified")

	return a.Rotator.Run(ctx)
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "posterswap %s (%s) built on %s\n",
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// checkRequiredCommands verifies git is available in PATH
func (a *App) checkRequiredCommands() error {
	_, err := a.execLookPath("git")
	if err != nil {
		return fmt.Errorf("git is not found in PATH")
	}
	return nil
}

// Close releases resources held by the App
func (a *App) Close() error {
	var errs []error

	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
