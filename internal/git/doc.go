// Package git wraps the external git binary behind a small capability
// surface.
//
// The Publisher is the only writer to repository state: it configures the
// commit identity, rewrites the remote with an access token when one is
// provided, stages and commits each world's poster files, and pushes once at
// the end of a run. Commands run through the CommandExecutor interface so
// tests can substitute a mock and assert on the exact invocations.
//
// Every failed command is returned as an *errors.GitError wrapping
// errors.ErrGitOperationFailed; callers treat these as fatal because the
// repository may be in an inconsistent state afterwards.
package git
