package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestBadgeCommand(t *testing.T) {
	out, err := run(t, "", "badge", "--label", "build", "--message", "passing", "--color", "green", "--target", "https://ci.example.com")
	require.NoError(t, err)
	assert.Equal(t, "[![build - passing](https://img.shields.io/badge/build-passing-green)](https://ci.example.com)\n", out)
}

func TestBadgeCommandQueryParams(t *testing.T) {
	out, err := run(t, "", "badge", "--label", "build", "--message", "passing", "--color", "green",
		"--query-params", "--large", "--logo", "github", "--logo-color", "white")
	require.NoError(t, err)
	assert.Equal(t,
		"![build - passing](https://img.shields.io/static/v1?label=build&message=passing&color=green&style=for-the-badge&logo=github&logoColor=white)\n",
		out)
}

func TestBadgeCommandRequiresMessage(t *testing.T) {
	_, err := run(t, "", "badge", "--color", "green")
	require.Error(t, err)
}

func TestBadgeCommandRejectsEmptyValues(t *testing.T) {
	_, err := run(t, "", "badge", "--message", "", "--color", "green")
	require.ErrorIs(t, err, ErrEmptyFlag)

	_, err = run(t, "", "badge", "--message", "passing", "--color", "")
	require.ErrorIs(t, err, ErrEmptyFlag)
}

func TestBadgeCommandStrategy(t *testing.T) {
	out, err := run(t, "", "badge", "--message", "passing", "--color", "green", "--strategy", "query")
	require.NoError(t, err)
	assert.Equal(t, "![passing](https://img.shields.io/static/v1?message=passing&color=green)\n", out)

	out, err = run(t, "", "badge", "--message", "passing", "--color", "green", "--query-params", "--strategy", "dash")
	require.NoError(t, err)
	assert.Equal(t, "![passing](https://img.shields.io/badge/passing-green)\n", out)

	_, err = run(t, "", "badge", "--message", "passing", "--color", "green", "--strategy", "svg")
	require.ErrorIs(t, err, badge.ErrUnknownStrategy)
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badges.yaml")
	content := `
badges:
  - message: passing
    color: green
  - label: docs
    message: latest
    color: blue
    strategy: query
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := run(t, "", "batch", path)
	require.NoError(t, err)
	assert.Equal(t,
		"![passing](https://img.shields.io/badge/passing-green)\n"+
			"![docs - latest](https://img.shields.io/static/v1?label=docs&message=latest&color=blue)\n",
		out)
}

func TestRenderAllKeepsOrder(t *testing.T) {
	var opts []badge.Options
	for _, m := range []string{"a", "b", "c", "d", "e"} {
		opts = append(opts, badge.Options{Message: m, Color: "red"})
	}

	lines, err := renderAll(opts)
	require.NoError(t, err)
	require.Len(t, lines, 5)
	for i, m := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, "!["+m+"](https://img.shields.io/badge/"+m+"-red)", lines[i])
	}
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "[![x](https://img.shields.io/badge/x-red)](https://example.com)", "inspect", "-")
	require.NoError(t, err)
	assert.Equal(t, "x\thttps://img.shields.io/badge/x-red\thttps://example.com\n", out)
}

func TestCrawlCommandRequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	_, err := run(t, "", "crawl", "--org", "acme", "--output", t.TempDir())
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestGenerateCommand(t *testing.T) {
	outputDir := t.TempDir()

	_, err := run(t, "", "generate", "--input", t.TempDir(), "--output", outputDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outputDir, "index.html"))
	assert.FileExists(t, filepath.Join(outputDir, "BADGES.md"))
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "badge", "--message", "x", "--color", "red")
	require.Error(t, err)
}
