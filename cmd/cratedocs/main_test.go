package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/cratedocs/cmd/cratedocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// testMain returns a Main wired to temporary cache and log directories.
func testMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.CacheDir = filepath.Join(t.TempDir(), "cache")
	m.LogDir = filepath.Join(t.TempDir(), "logs")
	return m
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := testMain(t)

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			// Usage should be printed to stdout (not stderr) when explicitly requested
			assert.Contains(t, stdout.String(), "Usage: cratedocs")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := testMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	// No args should show usage to stdout and return error
	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: cratedocs")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := testMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"bogus"}, stdout, stderr)

	assert.Error(t, err)
}

func TestRun_HelpWithoutCreatingLogs(t *testing.T) {
	t.Parallel()

	logDir := filepath.Join(t.TempDir(), "should-not-exist")

	m := main.NewMain()
	m.CacheDir = t.TempDir()
	m.LogDir = logDir

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage: cratedocs")
	assert.Empty(t, stderr.String())

	// Verify the log directory was NOT created for --help
	_, statErr := os.Stat(logDir)
	assert.True(t, os.IsNotExist(statErr), "log directory should not be created for --help")
}

func TestRun_Deps(t *testing.T) {
	t.Parallel()

	t.Run("parses a manifest end to end", func(t *testing.T) {
		t.Parallel()

		manifest := filepath.Join(t.TempDir(), "Cargo.lock")
		content := "[[package]]\nname = \"serde\"\nversion = \"1.0.0\"\n\n[[package]]\nname = \"tokio\"\nversion = \"1.0\"\n"
		require.NoError(t, os.WriteFile(manifest, []byte(content), 0644))

		m := testMain(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"deps", manifest}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "serde 1.0.0\ntokio 1.0\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("rejects a misnamed manifest", func(t *testing.T) {
		t.Parallel()

		manifest := filepath.Join(t.TempDir(), "deps.lock")
		require.NoError(t, os.WriteFile(manifest, []byte("[[package]]\n"), 0644))

		m := testMain(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"deps", manifest}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "must be named Cargo.lock")
	})
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	t.Run("lists seeded cache entries", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		require.NoError(t, os.MkdirAll(filepath.Join(m.CacheDir, "serde-1.0.219"), 0755))
		require.NoError(t, os.MkdirAll(filepath.Join(m.CacheDir, "tokio-1.47.1"), 0755))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "serde-1.0.219\ntokio-1.47.1\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("suggests sync for an empty cache", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No cached documentation")
		assert.Contains(t, stdout.String(), "cratedocs sync")
	})
}

func TestRun_Show(t *testing.T) {
	t.Parallel()

	t.Run("prints the index of a seeded entry", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)
		entry := filepath.Join(m.CacheDir, "serde-1.0.219")
		require.NoError(t, os.MkdirAll(entry, 0755))
		index := "# serde v1.0.219 Documentation\n\nGenerated from docs.rs\n"
		require.NoError(t, os.WriteFile(filepath.Join(entry, "README.md"), []byte(index), 0644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"show", "serde"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, index, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("returns error for an unknown crate", func(t *testing.T) {
		t.Parallel()

		m := testMain(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"show", "serde"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `no cached documentation for "serde"`)
	})
}

func TestRun_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts html files end to end", func(t *testing.T) {
		t.Parallel()

		srcDir := filepath.Join(t.TempDir(), "src")
		dstDir := filepath.Join(t.TempDir(), "dst")
		require.NoError(t, os.MkdirAll(srcDir, 0755))
		page := `<html><body><h1>Getting Started</h1><p>Install the crate with cargo add.</p></body></html>`
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, "guide.html"), []byte(page), 0644))

		m := testMain(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"convert", srcDir, dstDir}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Converted 1 of 1 files")

		got, err := os.ReadFile(filepath.Join(dstDir, "guide.md"))
		require.NoError(t, err)
		assert.Contains(t, string(got), "# Getting Started")
		assert.Contains(t, string(got), "cargo add")
	})

	t.Run("isolates content with the readability engine", func(t *testing.T) {
		t.Parallel()

		srcDir := filepath.Join(t.TempDir(), "src")
		dstDir := filepath.Join(t.TempDir(), "dst")
		require.NoError(t, os.MkdirAll(srcDir, 0755))
		page := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/releases">Releases Nav Link</a></nav>
<article><p>This is the main crate documentation that should be preserved in the output.</p></article>
</body>
</html>`
		require.NoError(t, os.WriteFile(filepath.Join(srcDir, "page.html"), []byte(page), 0644))

		m := testMain(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"convert", "--readability", srcDir, dstDir}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Converted 1 of 1 files")

		got, err := os.ReadFile(filepath.Join(dstDir, "page.md"))
		require.NoError(t, err)
		assert.Contains(t, string(got), "main crate documentation")
		assert.NotContains(t, string(got), "Releases Nav Link")
	})
}
