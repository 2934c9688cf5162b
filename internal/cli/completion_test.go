package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freshRootCmd creates a bare root command so completion output is not
// affected by the full command tree.
func freshRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sysmon",
		Short: "Local system monitoring from the terminal",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for sysmon")
	assert.Contains(t, output, "__sysmon_debug")
	assert.Contains(t, output, "complete -o default -F __start_sysmon sysmon")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "#compdef sysmon")
	assert.Contains(t, output, "_sysmon()")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "fish completion for sysmon")
	assert.Contains(t, output, "complete -c sysmon")
}

func TestCompletionPowershellGeneration(t *testing.T) {
	cmd := freshRootCmd()

	var buf bytes.Buffer
	err := cmd.GenPowerShellCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionUsesDynamicInfrastructure(t *testing.T) {
	// Cobra calls the binary with __completeNoDesc at runtime, which is
	// how live PID completion for kill works.
	var buf bytes.Buffer
	err := rootCmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "__completeNoDesc", "should use dynamic completion")
	assert.Contains(t, output, "__start_sysmon", "should have start function")
	assert.Contains(t, output, "_sysmon_root_command", "should have root command function")
}

func TestCompletionBashSyntaxValid(t *testing.T) {
	cmd := freshRootCmd()
	cmd.AddCommand(&cobra.Command{Use: "status", Short: "Show overview"})
	cmd.AddCommand(&cobra.Command{Use: "cpu", Short: "Show CPU usage"})

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	openBraces := strings.Count(output, "{")
	closeBraces := strings.Count(output, "}")
	assert.Equal(t, openBraces, closeBraces, "braces should be balanced")

	assert.Contains(t, output, "__start_sysmon()")
}

func TestCompletionCommandValidArgs(t *testing.T) {
	assert.Contains(t, completionCmd.ValidArgs, "bash")
	assert.Contains(t, completionCmd.ValidArgs, "zsh")
	assert.Contains(t, completionCmd.ValidArgs, "fish")
	assert.Contains(t, completionCmd.ValidArgs, "powershell")
	assert.Len(t, completionCmd.ValidArgs, 4)
}

func TestCompletionCommandRejectsUnknownShell(t *testing.T) {
	err := completionCmd.Args(completionCmd, []string{"tcsh"})
	assert.Error(t, err, "unknown shell should be rejected")
}

func TestCompletionCommandRequiresExactlyOneArg(t *testing.T) {
	assert.Error(t, completionCmd.Args(completionCmd, nil))
	assert.Error(t, completionCmd.Args(completionCmd, []string{"bash", "zsh"}))
	assert.NoError(t, completionCmd.Args(completionCmd, []string{"bash"}))
}
