package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgtools/vertools/internal/cli"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the CLI in helper process mode and returns stdout, stderr and the exit code.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return stdout.String(), stderr.String(), code
}

// writeInit writes an __init__.py declaring version 2.4.8.
func writeInit(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "__init__.py")
	contents := "import os\n\n__version__ = \"2.4.8\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func runInProcess(args ...string) (string, string, int) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

// TestScenarios covers printing and each increment kind.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no increment", want: "2.4.8"},
		{name: "major", args: []string{"--increment", "major"}, want: "3.0.0"},
		{name: "minor", args: []string{"--increment", "minor"}, want: "2.5.0"},
		{name: "micro", args: []string{"--increment", "micro"}, want: "2.4.9"},
		{name: "short flag", args: []string{"-i", "micro"}, want: "2.4.9"},
		{name: "uppercase kind", args: []string{"--increment=MAJOR"}, want: "3.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInit(t)
			stdout, stderr, code := runInProcess(append(tt.args, path)...)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.want, stdout, "output must have no trailing newline")
			assert.Empty(t, stderr)
		})
	}
}

func TestWriteBack(t *testing.T) {
	path := writeInit(t)

	stdout, stderr, code := runInProcess("-i", "minor", "-w", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "2.5.0", stdout)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "import os\n\n__version__ = \"2.5.0\"\n", string(got))

	// Without -w the file is left alone.
	stdout, _, code = runInProcess("-i", "major", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "3.0.0", stdout)
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"2.5.0"`)
}

func TestWriteWithoutIncrementWarns(t *testing.T) {
	path := writeInit(t)
	stdout, stderr, code := runInProcess("-w", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "2.4.8", stdout)
	assert.Contains(t, stderr, "--write has no effect")
}

func TestInvalidKind(t *testing.T) {
	path := writeInit(t)
	stdout, stderr, code := runInProcess("--increment", "patch", path)
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid increment kind")
	assert.Contains(t, stderr, "Usage:")
}

func TestMissingPath(t *testing.T) {
	_, stderr, code := runInProcess()
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Error: <path> positional argument is required")

	_, _, code = runInProcess("a.py", "b.py")
	assert.Equal(t, exitUsage, code)
}

func TestParseFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "__init__.py")
	require.NoError(t, os.WriteFile(path, []byte("__version__ = \"1.2\"\n"), 0644))

	stdout, stderr, code := runInProcess(path)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error:")
	assert.Contains(t, stderr, "__version__")
}

func TestUnreadablePath(t *testing.T) {
	_, stderr, code := runInProcess(filepath.Join(t.TempDir(), "missing.py"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "failed to read version file")
}

func TestVerboseLogging(t *testing.T) {
	path := writeInit(t)
	stdout, stderr, code := runInProcess("-v", "-i", "micro", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "2.4.9", stdout)
	assert.Contains(t, stderr, "version resolved")
	assert.Contains(t, stderr, "new=2.4.9")
}

func TestCLIHelp(t *testing.T) {
	_, stderr, code := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Usage:")
	assert.Contains(t, stderr, "--increment")
}

func TestCLIVersionFlag(t *testing.T) {
	stdout, _, code := runCLI(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, cli.Version)
}

// TestCLIExitCodes checks the real process exit status for success and failure.
func TestCLIExitCodes(t *testing.T) {
	path := writeInit(t)

	stdout, _, code := runCLI(t, "--increment", "major", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "3.0.0", stdout)

	_, stderr, code := runCLI(t, filepath.Join(t.TempDir(), "missing.py"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
}
