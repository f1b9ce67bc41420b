package pdfgen_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardoffice/guestpass/internal/pdfgen"
	"github.com/cardoffice/guestpass/internal/render"
)

// fakeConverter returns canned bytes or a canned error without Chrome.
type fakeConverter struct {
	out      []byte
	err      error
	lastHTML string
}

func (f *fakeConverter) Convert(_ context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	return f.out, f.err
}

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	templatesDir := t.TempDir()
	assetsDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(templatesDir, render.TemplateName),
		[]byte(`<p>{{pass_number}}</p><img src="NotreDameFightingIrish.png"><img src="A91waj2z0_18kacb_mug.png">`),
		0644))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, render.LogoAsset), []byte("logo"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, render.FooterAsset), []byte("footer"), 0644))
	return render.NewRenderer(templatesDir, assetsDir)
}

func TestGenerateWritesArtifact(t *testing.T) {
	conv := &fakeConverter{out: []byte("%PDF-1.7 fake")}
	gen := pdfgen.NewGenerator(newRenderer(t), conv)

	// Parent directories are created on demand.
	out := filepath.Join(t.TempDir(), "passes", "diamondPass_ABC_101.pdf")
	got, err := gen.Generate(context.Background(), render.Fields{PassNumber: "101"}, out)
	require.NoError(t, err)
	assert.Equal(t, out, got)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), data)

	// The converter received the fully-substituted, asset-inlined HTML.
	assert.Contains(t, conv.lastHTML, "<p>101</p>")
	assert.Contains(t, conv.lastHTML, "data:image/png;base64,")
}

func TestGenerateConverterFailure(t *testing.T) {
	conv := &fakeConverter{err: errors.New("chrome not found")}
	gen := pdfgen.NewGenerator(newRenderer(t), conv)

	out := filepath.Join(t.TempDir(), "pass.pdf")
	_, err := gen.Generate(context.Background(), render.Fields{PassNumber: "101"}, out)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestGenerateEmptyArtifact(t *testing.T) {
	conv := &fakeConverter{out: nil}
	gen := pdfgen.NewGenerator(newRenderer(t), conv)

	out := filepath.Join(t.TempDir(), "pass.pdf")
	_, err := gen.Generate(context.Background(), render.Fields{PassNumber: "101"}, out)
	assert.ErrorIs(t, err, pdfgen.ErrNoArtifact)
}

func TestGenerateRenderFailurePropagates(t *testing.T) {
	r := render.NewRenderer(t.TempDir(), t.TempDir())
	gen := pdfgen.NewGenerator(r, &fakeConverter{out: []byte("x")})

	_, err := gen.Generate(context.Background(), render.Fields{}, filepath.Join(t.TempDir(), "pass.pdf"))
	assert.ErrorIs(t, err, render.ErrTemplateMissing)
}
