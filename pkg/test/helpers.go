package test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// CreateTestFile creates a file with content in the test filesystem.
func CreateTestFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

// CreateTestDir creates a directory in the test filesystem.
func CreateTestDir(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(path, 0755))
}

// AssertNoCommands checks that the mock runner was never invoked.
func AssertNoCommands(t *testing.T, runner *MockCommandRunner) {
	t.Helper()
	require.Empty(t, runner.Commands(), "no command should have been executed")
}

// AssertCommandExecuted checks that a command was executed by the mock runner.
func AssertCommandExecuted(t *testing.T, runner *MockCommandRunner, command string) {
	t.Helper()
	require.Contains(t, runner.Commands(), command, "Command should have been executed: %s", command)
}

// AssertLogContains checks that the logger captured a message containing the substring.
func AssertLogContains(t *testing.T, logger *MockLogger, substring string) {
	t.Helper()
	require.True(t, logger.HasMessage(substring), "Log should contain: %s", substring)
}
