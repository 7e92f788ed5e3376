// Package pshell runs PowerShell commands on the host shell.
package pshell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a shell command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, command string) (string, error)
}

// Shell invokes PowerShell as an external process.
type Shell struct {
	// Path is the PowerShell executable, e.g. "powershell" or "pwsh".
	Path string
}

// New creates a Shell for the given executable path.
func New(path string) *Shell {
	if path == "" {
		path = "powershell"
	}
	return &Shell{Path: path}
}

// Run executes the command non-interactively and returns stdout. A non-zero
// exit status is reported as an error carrying the stderr output.
func (s *Shell) Run(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, s.Path, "-NoProfile", "-NonInteractive", "-Command", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("powershell command failed: %w", err)
		}
		return "", fmt.Errorf("powershell command failed: %s: %w", msg, err)
	}

	return stdout.String(), nil
}
