// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full
// stack: command parsing -> internal engines -> the filesystem. The internal
// packages carry their own unit tests for the parsing, permutation and
// resolution logic; the tests here prove the commands wire them together
// correctly, end to end, against a real temp directory.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the tag binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "tag-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "tag"
		if os.PathSeparator == '\\' {
			binaryName = "tag.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory and an isolated home,
// so configuration and the audit log never touch the real user account.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()
	home := t.TempDir()

	return &testEnv{t: t, dir: dir, home: home, binary: binary}
}

// run executes tag with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("tag %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes tag and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// touch creates an empty file at the given path relative to the test dir,
// creating parent directories as needed.
func (e *testEnv) touch(path string) {
	e.t.Helper()
	full := filepath.Join(e.dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		e.t.Fatal(err)
	}
	if err := os.WriteFile(full, nil, 0644); err != nil {
		e.t.Fatal(err)
	}
}

// exists asserts a path relative to the test dir exists.
func (e *testEnv) exists(path string) {
	e.t.Helper()
	_, err := os.Lstat(filepath.Join(e.dir, filepath.FromSlash(path)))
	assert.NoError(e.t, err, "expected %s to exist", path)
}

// notExists asserts a path relative to the test dir does not exist.
func (e *testEnv) notExists(path string) {
	e.t.Helper()
	_, err := os.Lstat(filepath.Join(e.dir, filepath.FromSlash(path)))
	assert.True(e.t, os.IsNotExist(err), "expected %s to not exist", path)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
