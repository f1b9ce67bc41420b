// Package pdfgen converts rendered pass HTML into the print-ready PDF
// artifact. Conversion runs through a headless Chrome instance; its absence
// or misconfiguration fails the row, never the batch.
package pdfgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cardoffice/guestpass/internal/pkg/logger"
	"github.com/cardoffice/guestpass/internal/render"
)

// ErrNoArtifact is returned when conversion reports success but no file
// exists at the output path afterwards.
var ErrNoArtifact = errors.New("pdf conversion produced no artifact")

// Converter turns self-contained HTML into PDF bytes.
type Converter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// Generator renders the diamond pass template and writes the PDF artifact.
type Generator struct {
	renderer  *render.Renderer
	converter Converter
}

// NewGenerator creates a document generator from a template renderer and a
// PDF converter.
func NewGenerator(r *render.Renderer, c Converter) *Generator {
	return &Generator{renderer: r, converter: c}
}

// Generate renders the pass for the given fields and writes it to outputPath,
// creating parent directories as needed. The path is returned only after the
// artifact is verified to exist on disk.
func (g *Generator) Generate(ctx context.Context, f render.Fields, outputPath string) (string, error) {
	html, err := g.renderer.RenderDocument(f)
	if err != nil {
		return "", err
	}

	pdf, err := g.converter.Convert(ctx, html)
	if err != nil {
		return "", fmt.Errorf("convert pass %s: %w", f.PassNumber, err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}

	if fi, err := os.Stat(outputPath); err != nil || fi.Size() == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoArtifact, outputPath)
	}

	logger.Debug("pass artifact written", "path", outputPath, "pass_number", f.PassNumber)
	return outputPath, nil
}
