package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "-n", "10", "-m", "12", "-q", "7", "--digest", "--profile")
	require.NoError(t, err)
	assert.Contains(t, out, "MQ Estimator for system with 10 variables and 12 equations")
	assert.Contains(t, out, "BooleanSolveFXL")
	assert.Contains(t, out, "k: 4, variant: deterministic")
	assert.Contains(t, out, "digest: ")
	assert.NotContains(t, out, "DinurFirst")
}

func TestTableCommandErrors(t *testing.T) {
	_, err := run(t, "table", "-n", "10")
	require.Error(t, err)

	_, err = run(t, "table", "-n", "10", "-m", "12", "-q", "6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prime power")

	_, err = run(t, "--log-format", "xml", "table", "-n", "10", "-m", "12")
	require.Error(t, err)
}

func TestFastestCommand(t *testing.T) {
	out, err := run(t, "fastest", "-n", "10", "-m", "12", "-q", "7", "--exclude", "F5,HybridF5,ExhaustiveSearch,Lokshtanov,Crossbred")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BooleanSolveFXL\t2^27.6\t"), out)

	_, err = run(t, "fastest", "-n", "10", "-m", "12", "-q", "7",
		"--exclude", "F5,HybridF5,ExhaustiveSearch,Lokshtanov,Crossbred,BooleanSolveFXL")
	require.Error(t, err)
}

func TestMinPolynomialsCommand(t *testing.T) {
	out, err := run(t, "min-polynomials", "--level", "80", "-q", "16")
	require.NoError(t, err)
	assert.Equal(t, "33\n", out)

	_, err = run(t, "min-variables", "--level", "81", "-q", "16")
	require.Error(t, err)
}

func TestSecurityCommand(t *testing.T) {
	out, err := run(t, "security", "uov", "-q", "16", "-n", "25", "-m", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "UOV signature over GF(16) with 25 variables and 10 polynomials")
	assert.Contains(t, out, "security level")

	_, err = run(t, "security", "sphincs")
	require.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "sweep.yaml")
	jsonl := filepath.Join(dir, "sweep.jsonl")
	require.NoError(t, os.WriteFile(cfg, []byte("n: \"6..7\"\nm: \"9\"\nq: [2]\nworkers: 2\njsonl: "+jsonl+"\n"), 0o644))

	out, err := run(t, "sweep", "-c", cfg, "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "median")
	assert.FileExists(t, jsonl)
}
