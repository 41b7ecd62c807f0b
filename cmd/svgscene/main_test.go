package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svgscene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `<svg width="30" height="20">
	<g id="group"><rect id="box" width="10" height="10" fill="red"/></g>
	<unknown/>
</svg>`

// run executes the command line, returning stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { svgscene.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.svg")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))
	return path
}

func TestDump(t *testing.T) {
	input := writeDocument(t)

	out, logs, err := run(t, "dump", input)
	require.NoError(t, err)
	assert.Contains(t, out, `path "box"`)
	assert.Contains(t, out, `group "group"`)
	assert.NotContains(t, logs, "unknown")

	_, logs, err = run(t, "--verbose", "dump", input)
	require.NoError(t, err)
	assert.Contains(t, logs, "tag=unknown")
}

func TestPNG(t *testing.T) {
	input := writeDocument(t)
	for _, backend := range []string{"rasterx", "gg"} {
		output := filepath.Join(t.TempDir(), backend+".png")
		_, _, err := run(t, "png", "--backend", backend, input, output)
		require.NoError(t, err, backend)

		f, err := os.Open(output)
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 30, img.Bounds().Dx(), backend)
		assert.Equal(t, 20, img.Bounds().Dy(), backend)
	}

	_, _, err := run(t, "png", "--backend", "cairo", input, filepath.Join(t.TempDir(), "out.png"))
	assert.Error(t, err)
}

func TestPDF(t *testing.T) {
	input := writeDocument(t)
	output := filepath.Join(t.TempDir(), "out.pdf")
	_, _, err := run(t, "pdf", input, output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "dump", filepath.Join(t.TempDir(), "missing.svg"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	notSVG := filepath.Join(t.TempDir(), "doc.html")
	require.NoError(t, os.WriteFile(notSVG, []byte("<html/>"), 0o644))
	_, _, err = run(t, "pdf", notSVG, filepath.Join(t.TempDir(), "out.pdf"))
	assert.ErrorIs(t, err, svgscene.ErrNotSVG)

	_, _, err = run(t, "dump")
	assert.Error(t, err)
}
