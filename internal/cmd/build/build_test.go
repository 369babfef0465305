package build

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func setupSite(t *testing.T) string {
	t.Helper()
	for _, key := range []string{"NOTHEME_URL", "NOTHEME_CONTENT_DIR", "NOTHEME_OUTPUT_DIR"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.yml"), "name: Example\nurl: https://example.com\n")
	writeFile(t, filepath.Join(dir, "content", "about.md"), "---\ntitle: About\n---\nAbout us.\n")
	writeFile(t, filepath.Join(dir, "content", "posts", "hello.md"), "---\ntitle: Hello\ndate: \"2024-01-02\"\ntags: [go]\n---\nHi.\n")
	return dir
}

func newOptions(dir string) (*buildOptions, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &buildOptions{
		configPath: filepath.Join(dir, "site.yml"),
		logLevel:   "info",
		noColor:    true,
		stdout:     &stdout,
		stderr:     &stderr,
	}, &stdout, &stderr
}

func TestRunBuild(t *testing.T) {
	dir := setupSite(t)
	opts, stdout, stderr := newOptions(dir)

	require.NoError(t, runBuild(context.Background(), opts))

	// index, tag list, section, item, page, tag details
	assert.Equal(t, "Built 6 pages in "+filepath.Join(dir, "public")+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "built site")
	assert.FileExists(t, filepath.Join(dir, "public", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "public", "posts", "hello", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "public", "tags", "go", "index.html"))
}

func TestRunBuildOutputFlag(t *testing.T) {
	dir := setupSite(t)
	opts, _, _ := newOptions(dir)
	opts.outputDir = filepath.Join(t.TempDir(), "out")

	require.NoError(t, runBuild(context.Background(), opts))
	assert.FileExists(t, filepath.Join(opts.outputDir, "about", "index.html"))
	assert.NoDirExists(t, filepath.Join(dir, "public"))
}

func TestRunBuildInvalidLogLevel(t *testing.T) {
	dir := setupSite(t)
	opts, _, _ := newOptions(dir)
	opts.logLevel = "loud"

	err := runBuild(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRunBuildMissingConfig(t *testing.T) {
	opts, _, _ := newOptions(t.TempDir())

	err := runBuild(context.Background(), opts)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewCmdBuild(t *testing.T) {
	dir := setupSite(t)

	cmd := NewCmdBuild()
	cmd.Flags().String("config", filepath.Join(dir, "site.yml"), "")
	cmd.Flags().String("log-level", "warn", "")
	cmd.Flags().Bool("no-color", true, "")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--concurrency", "1"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Built 6 pages")
	assert.Empty(t, stderr.String())
}

func TestRelativeTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("sites", "blog", "content"), relativeTo(filepath.Join("sites", "blog", "site.yml"), "content"))
	assert.Equal(t, "content", relativeTo("site.yml", "content"))

	abs, err := filepath.Abs("elsewhere")
	require.NoError(t, err)
	assert.Equal(t, abs, relativeTo(filepath.Join("sites", "site.yml"), abs))
}
