package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// hostCLITimeout bounds the query against the host CLI tool.
const hostCLITimeout = 5 * time.Second

// BinaryPathCheck verifies the sysmon binary is on PATH.
type BinaryPathCheck struct{}

func (c *BinaryPathCheck) Name() string     { return "binary_path" }
func (c *BinaryPathCheck) Category() string { return "INSTALL" }

func (c *BinaryPathCheck) Run() CheckResult {
	path, err := exec.LookPath("sysmon")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "sysmon not found on PATH",
			Suggestion: "Run scripts/install.sh, or copy the binary into /usr/local/bin",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Binary on PATH: %s", path),
	}
}

func (c *BinaryPathCheck) Fix() error { return nil }

// CompletionCheck looks for an installed completion script for the
// current shell.
type CompletionCheck struct{}

func (c *CompletionCheck) Name() string     { return "shell_completion" }
func (c *CompletionCheck) Category() string { return "INSTALL" }

func (c *CompletionCheck) Run() CheckResult {
	shell := filepath.Base(os.Getenv("SHELL"))
	if shell == "" || shell == "." {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Cannot determine shell ($SHELL is unset)",
			Suggestion: "Generate completion manually: sysmon completion --help",
		}
	}

	paths := completionPaths(shell)
	if len(paths) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("No completion support for shell '%s'", shell),
			Suggestion: "Supported shells: bash, zsh, fish, powershell",
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return CheckResult{
				Name:    c.Name(),
				Status:  StatusPass,
				Message: fmt.Sprintf("Completion installed for %s: %s", shell, p),
			}
		}
	}

	return CheckResult{
		Name:       c.Name(),
		Status:     StatusWarn,
		Message:    fmt.Sprintf("No completion script found for %s", shell),
		Suggestion: fmt.Sprintf("Install it: sysmon completion %s > %s", shell, paths[0]),
	}
}

func (c *CompletionCheck) Fix() error { return nil }

// completionPaths returns the candidate completion script locations for a
// shell, most preferred first.
func completionPaths(shell string) []string {
	home, _ := os.UserHomeDir()
	switch shell {
	case "bash":
		return []string{
			filepath.Join(home, ".bash_completion.d", "sysmon"),
			"/etc/bash_completion.d/sysmon",
			"/usr/local/etc/bash_completion.d/sysmon",
		}
	case "zsh":
		return []string{
			filepath.Join(home, ".zsh", "completions", "_sysmon"),
			"/usr/local/share/zsh/site-functions/_sysmon",
			"/usr/share/zsh/site-functions/_sysmon",
		}
	case "fish":
		return []string{
			filepath.Join(home, ".config", "fish", "completions", "sysmon.fish"),
			"/usr/share/fish/vendor_completions.d/sysmon.fish",
		}
	default:
		return nil
	}
}

// HostCLICheck verifies the chat-based CLI host is installed and has the
// sysmon server registered. Both halves are optional, so the check never
// fails outright.
type HostCLICheck struct{}

func (c *HostCLICheck) Name() string     { return "host_cli" }
func (c *HostCLICheck) Category() string { return "INSTALL" }

func (c *HostCLICheck) Run() CheckResult {
	path, err := exec.LookPath("claude")
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "claude CLI not found (optional)",
			Suggestion: "Install it to use sysmon as an MCP server from chat",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), hostCLITimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, path, "mcp", "list").Output()
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "claude CLI found, but listing MCP servers failed",
			Suggestion: "Register manually: claude mcp add sysmon -- sysmon serve",
		}
	}

	if !strings.Contains(string(output), "sysmon") {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "sysmon is not registered with the claude CLI",
			Suggestion: "Register it: claude mcp add sysmon -- sysmon serve",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "claude CLI found, sysmon server registered",
	}
}

func (c *HostCLICheck) Fix() error { return nil }

// NewInstallChecks returns the installation checks.
func NewInstallChecks() []Check {
	return []Check{
		&BinaryPathCheck{},
		&CompletionCheck{},
		&HostCLICheck{},
	}
}
