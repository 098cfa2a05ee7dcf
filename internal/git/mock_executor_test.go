package git

import (
	"os/exec"
	"strings"
)

// MockCommandExecutor is a simple mock of the CommandExecutor interface
// that doesn't actually execute anything but just records calls.
type MockCommandExecutor struct {
	Output   string
	LastCmd  *exec.Cmd
	Commands []*exec.Cmd

	ExecuteFn           func(cmd *exec.Cmd) error
	ExecuteWithOutputFn func(cmd *exec.Cmd) (string, error)
}

// Execute implements the CommandExecutor interface
func (m *MockCommandExecutor) Execute(cmd *exec.Cmd) error {
	m.LastCmd = cmd
	m.Commands = append(m.Commands, cmd)

	if m.ExecuteFn != nil {
		return m.ExecuteFn(cmd)
	}

	return nil
}

// ExecuteWithOutput implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	m.LastCmd = cmd
	m.Commands = append(m.Commands, cmd)

	if m.ExecuteWithOutputFn != nil {
		return m.ExecuteWithOutputFn(cmd)
	}

	return m.Output, nil
}

// NewMockCommandExecutor creates a new mock executor
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Commands: make([]*exec.Cmd, 0),
	}
}

// CommandLines renders the recorded commands with the leading "git -C <path>"
// stripped, for compact assertions.
func (m *MockCommandExecutor) CommandLines() []string {
	lines := make([]string, 0, len(m.Commands))
	for _, cmd := range m.Commands {
		args := cmd.Args
		if len(args) >= 3 && args[1] == "-C" {
			args = append([]string{args[0]}, args[3:]...)
		}
		lines = append(lines, strings.Join(args, " "))
	}
	return lines
}
