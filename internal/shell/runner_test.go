package shell

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("runner shells out through sh")
	}
}

func TestRunnerOutputTrimsWhitespace(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner(os.Getenv("PATH"), false)

	out, err := r.Output("echo '  hello  '")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestRunnerOutputFailure(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner(os.Getenv("PATH"), false)

	out, err := r.Output("exit 3")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRunnerRun(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner(os.Getenv("PATH"), false)

	require.NoError(t, r.Run("true"))

	err := r.Run("exit 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `command "exit 1" failed`)
}

func TestRunnerPassesSearchPathToChild(t *testing.T) {
	skipOnWindows(t)
	r := NewRunner("/custom/tools/bin", false)

	out, err := r.Output("echo $PATH")
	require.NoError(t, err)
	assert.Equal(t, "/custom/tools/bin", out, "child processes must see the explicit search path")
}

func TestCommandExists(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sometool"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notexec"), []byte("data"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dirtool"), 0o755))

	r := NewRunner(joinPath(dir, t.TempDir()), false)

	assert.True(t, r.CommandExists("sometool"))
	assert.False(t, r.CommandExists("notexec"), "non-executable files do not resolve")
	assert.False(t, r.CommandExists("dirtool"), "directories do not resolve")
	assert.False(t, r.CommandExists("absent"))
}

func TestRunnerDryRun(t *testing.T) {
	skipOnWindows(t)
	marker := filepath.Join(t.TempDir(), "marker")
	r := NewRunner(os.Getenv("PATH"), true)

	require.NoError(t, r.Run("touch "+marker))
	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err), "dry run must not execute the command")

	out, err := r.Output("echo hello")
	require.NoError(t, err)
	assert.Empty(t, out)
}
