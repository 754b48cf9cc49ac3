package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var isbnLine = regexp.MustCompile(`^978[0-9]{10}\n$`)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPrintsOneLine(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	require.Regexp(t, isbnLine, out)
}

func TestRootSeedIsReproducible(t *testing.T) {
	a, _, err := run(t, "--seed", "77")
	require.NoError(t, err)
	b, _, err := run(t, "-s", "77")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Regexp(t, isbnLine, a)
}

func TestRootDebugLogsStayOffStdout(t *testing.T) {
	out, errOut, err := run(t, "--seed", "3", "--log-level", "debug")
	require.NoError(t, err)
	require.Regexp(t, isbnLine, out)
	require.Contains(t, errOut, `"msg":"generated"`)
}

func TestRootReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isbngen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 77\n"), 0o644))

	fromFile, _, err := run(t, "--config", path)
	require.NoError(t, err)
	fromFlag, _, err := run(t, "--seed", "77")
	require.NoError(t, err)
	require.Equal(t, fromFlag, fromFile)

	overridden, _, err := run(t, "--config", path, "--seed", "78")
	require.NoError(t, err)
	require.NotEqual(t, fromFile, overridden)
}

func TestRootRejectsArgs(t *testing.T) {
	out, _, err := run(t, "extra")
	require.Error(t, err)
	require.Empty(t, out)
}
