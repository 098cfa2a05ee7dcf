package errors

import (
	"strings"
	"testing"
)

func TestGitError(t *testing.T) {
	t.Parallel()

	wrapped := Wrap(ErrGitOperationFailed, "exit status 128")
	err := NewGitError("push", []string{"origin"}, wrapped, "remote: permission denied")

	msg := err.Error()
	for _, want := range []string{"git push failed", "remote: permission denied", "exit status 128"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in error message %q", want, msg)
		}
	}

	if !Is(err, ErrGitOperationFailed) {
		t.Error("expected GitError to match ErrGitOperationFailed")
	}

	var gitErr *GitError
	if !As(err, &gitErr) {
		t.Fatal("expected As to extract *GitError")
	}
	if gitErr.Operation != "push" {
		t.Errorf("expected operation push, got %q", gitErr.Operation)
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("extension", "png", Wrap(ErrInvalidConfiguration, "extension must start with a dot"))

	if !Is(err, ErrInvalidConfiguration) {
		t.Error("expected ConfigError to match ErrInvalidConfiguration")
	}
	if !strings.Contains(err.Error(), "extension = png") {
		t.Errorf("expected parameter and value in message, got %q", err.Error())
	}
}

func TestWrapPreservesSentinel(t *testing.T) {
	t.Parallel()

	err := Wrapf(ErrPoolExhausted, "no unused image left for %s", "poster3.png")

	if !Is(err, ErrPoolExhausted) {
		t.Error("expected wrapped error to match ErrPoolExhausted")
	}
	if !strings.Contains(err.Error(), "poster3.png") {
		t.Errorf("expected slot name in message, got %q", err.Error())
	}
}
