package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	env := []string{
		"GENERATION_API_KEYS=gen-key-1111,gen-key-2222",
		"SEARCH_API_KEYS=search-key-3333",
	}

	_, stderr, err := runCH(t, binaryPath, home, env,
		"profile", "set",
		"--role", "SDE",
		"--ecosystem", "FAANG/Big Tech",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runCH(t, binaryPath, home, env, "profile", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "target: SDE at FAANG/Big Tech")

	for _, want := range []string{"****1111", "****2222", "****1111"} {
		stdout, stderr, err = runCH(t, binaryPath, home, env, "pool", "next", "--session", "smoke")
		require.NoError(t, err, "stderr: %s", stderr)
		assert.Contains(t, stdout, want)
	}

	_, stderr, err = runCH(t, binaryPath, home, env, "session", "end", "--session", "smoke")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runCH(t, binaryPath, home, env, "pool", "next", "--session", "smoke")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "****1111")
}

func TestSmokeFailsClosedWithoutKeys(t *testing.T) {
	binaryPath := buildBinary(t)

	_, _, err := runCH(t, binaryPath, t.TempDir(), nil, "pool", "next", "--session", "smoke")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ch-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ch")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ch binary: %s", string(output))
	return binaryPath
}

func runCH(t *testing.T, binaryPath, home string, extraEnv []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(filteredEnviron(), "HOME="+home)
	cmd.Env = append(cmd.Env, extraEnv...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// filteredEnviron drops credential variables from the developer's shell.
func filteredEnviron() []string {
	drop := map[string]bool{
		"GENERATION_API_KEYS": true,
		"GEMINI_API_KEYS":     true,
		"SEARCH_API_KEYS":     true,
		"SERPER_API_KEYS":     true,
		"DATABASE_URL":        true,
	}

	env := make([]string, 0, len(os.Environ()))
	for _, entry := range os.Environ() {
		name, _, _ := strings.Cut(entry, "=")
		if drop[name] {
			continue
		}
		env = append(env, entry)
	}
	return env
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
