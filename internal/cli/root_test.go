package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})
	require.NotNil(t, cmd)
	assert.Equal(t, "tokenorder", cmd.Use)
	assert.Contains(t, cmd.Long, "colored, shaped tokens")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})
	commands := []string{"order", "serve", "menu", "version"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "", configFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestCommandFlags(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})

	orderCmd, _, err := cmd.Find([]string{"order"})
	require.NoError(t, err)
	annotate := orderCmd.Flags().Lookup("annotate")
	require.NotNil(t, annotate)
	assert.Equal(t, "a", annotate.Shorthand)

	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	require.NotNil(t, serveCmd.Flags().Lookup("metrics-listen"))

	menuCmd, _, err := cmd.Find([]string{"menu"})
	require.NoError(t, err)
	format := menuCmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

// run executes the CLI and returns the exit code, stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), BuildInfo{Version: "1.0.0", BuildTime: "today", GitCommit: "abc123"},
		args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersionCommand(t *testing.T) {
	code, stdout, _ := run(t, "", "version")

	assert.Equal(t, 0, code)
	assert.Equal(t, "tokenorder 1.0.0\n  Build time: today\n  Git commit: abc123\n", stdout)
}

func TestExecute_UnknownCommand(t *testing.T) {
	code, _, stderr := run(t, "", "bake")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: unknown command")
}

func TestExecute_BadConfig(t *testing.T) {
	code, _, stderr := run(t, "", "menu", "--config", "/nonexistent/tokenorder.yaml")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to read configuration file")
}
