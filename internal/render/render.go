// Package render fills the diamond pass HTML template. Substitution is
// deliberately literal: exact-match {{name}} markers, one defaults table,
// no template language. The pass layout is print-fidelity-critical and must
// never be reinterpreted by an engine.
package render

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for document rendering. A missing template and a missing
// asset abort the row differently in the batch summary, so they stay distinct.
var (
	ErrTemplateMissing = errors.New("pass template not found")
	ErrAssetMissing    = errors.New("pass asset not found")
)

// TemplateName is the fixed template identity for the diamond pass.
const TemplateName = "diamondPass.html"

// The two raster assets referenced by src attributes in the template.
const (
	LogoAsset   = "NotreDameFightingIrish.png"
	FooterAsset = "A91waj2z0_18kacb_mug.png"
)

// Fields parameterizes one rendered pass. Empty fields fall back to the
// declared defaults in Render; there is no "missing marker" error path.
type Fields struct {
	AcademicYearStart string
	AcademicYearEnd   string
	PassType          string
	ParkingType       string
	ValidUntil        string
	LotName           string
	AdditionalLot     string
	PassNumber        string
}

// replacements maps template markers to field values with defaults applied.
func (f Fields) replacements() map[string]string {
	r := map[string]string{
		"{{academic_year_start}}": f.AcademicYearStart,
		"{{academic_year_end}}":   f.AcademicYearEnd,
		"{{pass_type}}":           f.PassType,
		"{{parking_type}}":        f.ParkingType,
		"{{valid_until}}":         f.ValidUntil,
		"{{lot_name}}":            f.LotName,
		"{{add_lot}}":             f.AdditionalLot,
		"{{pass_number}}":         f.PassNumber,
	}
	if r["{{pass_type}}"] == "" {
		r["{{pass_type}}"] = "UNIVERSITY OF NOTRE DAME"
	}
	if r["{{parking_type}}"] == "" {
		r["{{parking_type}}"] = "GUEST PARKING PASS"
	}
	if r["{{lot_name}}"] == "" {
		r["{{lot_name}}"] = "C LOT"
	}
	return r
}

// Render substitutes the eight pass markers into templateHTML. Substitution
// is non-recursive and case-sensitive; rendering output that contains no
// remaining markers is a no-op.
func Render(templateHTML string, f Fields) string {
	out := templateHTML
	for marker, value := range f.replacements() {
		out = strings.ReplaceAll(out, marker, value)
	}
	return out
}

// EmbedAssets replaces each src="<filename>" image reference with an inline
// data URI so the rendered document carries its own images.
func EmbedAssets(html string, assets map[string][]byte) string {
	for name, data := range assets {
		encoded := base64.StdEncoding.EncodeToString(data)
		html = strings.ReplaceAll(html,
			fmt.Sprintf("src=%q", name),
			fmt.Sprintf("src=%q", "data:image/png;base64,"+encoded))
	}
	return html
}

// Renderer loads the fixed template and assets from disk and produces the
// final self-contained HTML for one pass.
type Renderer struct {
	TemplatesDir string
	AssetsDir    string
}

// NewRenderer creates a renderer rooted at the given template and asset dirs.
func NewRenderer(templatesDir, assetsDir string) *Renderer {
	return &Renderer{TemplatesDir: templatesDir, AssetsDir: assetsDir}
}

// RenderDocument renders the diamond pass template with fields substituted
// and both logos inlined. Returns ErrTemplateMissing or ErrAssetMissing when
// the fixed inputs are absent.
func (r *Renderer) RenderDocument(f Fields) (string, error) {
	tplPath := filepath.Join(r.TemplatesDir, TemplateName)
	tpl, err := os.ReadFile(tplPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateMissing, tplPath)
	}

	assets := make(map[string][]byte, 2)
	for _, name := range []string{LogoAsset, FooterAsset} {
		data, err := os.ReadFile(filepath.Join(r.AssetsDir, name))
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrAssetMissing, name)
		}
		assets[name] = data
	}

	return EmbedAssets(Render(string(tpl), f), assets), nil
}
