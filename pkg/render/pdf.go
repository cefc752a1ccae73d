// Package render draws a page plan into a PDF document.
// It owns fonts, page geometry, and file writing; all layout decisions
// (which card goes in which cell, on which page) are made upstream.
package render

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/codeclub/cccards/pkg/cards"
	cerrors "github.com/codeclub/cccards/pkg/errors"
	"github.com/codeclub/cccards/pkg/layout"
)

// A4 page dimensions in millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
)

// Config specifies the card page geometry and typography.
// All lengths are in millimetres, font sizes in points.
type Config struct {
	// CardWidth is the width of one card cell.
	// Default: 48 (4 columns fit an A4 page with room for margins)
	CardWidth float64 `yaml:"card_width"`

	// CardHeight is the height of one card cell.
	// Default: 40 (7 rows fit an A4 page)
	CardHeight float64 `yaml:"card_height"`

	// MarginLeft is the left (and right) page margin. Symmetric margins
	// keep mirrored back pages aligned with their fronts after flipping.
	// Default: 9
	MarginLeft float64 `yaml:"margin_left"`

	// MarginTop is the top page margin.
	// Default: 8.5
	MarginTop float64 `yaml:"margin_top"`

	// FontFamily is the font for card faces.
	// Default: "Helvetica"
	FontFamily string `yaml:"font_family"`

	// LabelSize is the font size for ordinary card labels.
	// Default: 14
	LabelSize float64 `yaml:"label_size"`

	// WildcardSize is the font size for the wildcard face.
	// Default: 32
	WildcardSize float64 `yaml:"wildcard_size"`
}

// DefaultConfig returns a Config with sensible defaults for a 4x7 grid
// of 48x40 mm cards on A4.
func DefaultConfig() Config {
	return Config{
		CardWidth:    48,
		CardHeight:   40,
		MarginLeft:   9,
		MarginTop:    8.5,
		FontFamily:   "Helvetica",
		LabelSize:    14,
		WildcardSize: 32,
	}
}

// Validate checks that the configured geometry is usable and that the full
// 4x7 grid fits on an A4 page.
func (c Config) Validate() error {
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		return cerrors.ConfigErrorf(cerrors.ErrConfigInvalid,
			"card dimensions must be positive, got %.1fx%.1f", c.CardWidth, c.CardHeight)
	}
	if c.MarginLeft < 0 || c.MarginTop < 0 {
		return cerrors.ConfigError(cerrors.ErrConfigInvalid, "margins must not be negative")
	}
	if c.LabelSize <= 0 || c.WildcardSize <= 0 {
		return cerrors.ConfigError(cerrors.ErrConfigInvalid, "font sizes must be positive")
	}
	if c.FontFamily == "" {
		return cerrors.ConfigError(cerrors.ErrConfigInvalid, "font family must not be empty")
	}
	if c.MarginLeft+float64(layout.GridCols)*c.CardWidth > pageWidth {
		return cerrors.ConfigErrorf(cerrors.ErrConfigInvalid,
			"%d columns of %.1f mm cards do not fit an A4 page", layout.GridCols, c.CardWidth)
	}
	if c.MarginTop+float64(layout.GridRows)*c.CardHeight > pageHeight {
		return cerrors.ConfigErrorf(cerrors.ErrConfigInvalid,
			"%d rows of %.1f mm cards do not fit an A4 page", layout.GridRows, c.CardHeight)
	}
	return nil
}

// PDFRenderer implements layout.PageRenderer on an fpdf document.
// The document is built fully in memory; nothing touches disk until the
// caller writes the Output.
type PDFRenderer struct {
	cfg Config
	doc *fpdf.Fpdf
	tr  func(string) string
}

var _ layout.PageRenderer = (*PDFRenderer)(nil)

// New creates a renderer for an A4 portrait document in millimetre units.
func New(cfg Config) *PDFRenderer {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginLeft)
	// Pagination is decided by the page plan, never by the drawing layer.
	doc.SetAutoPageBreak(false, 0)

	return &PDFRenderer{
		cfg: cfg,
		doc: doc,
		tr:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// StartPage begins a new drawing surface.
func (r *PDFRenderer) StartPage() {
	r.doc.AddPage()
}

// DrawCard draws one card face centered in its grid cell. Blank filler
// cards occupy their cell but leave it visually empty.
func (r *PDFRenderer) DrawCard(row, col int, card cards.Instance) {
	if card.Blank() {
		return
	}

	if card.Wildcard {
		r.doc.SetFont(r.cfg.FontFamily, "B", r.cfg.WildcardSize)
	} else {
		r.doc.SetFont(r.cfg.FontFamily, "B", r.cfg.LabelSize)
	}

	x := r.cfg.MarginLeft + float64(col)*r.cfg.CardWidth
	y := r.cfg.MarginTop + float64(row)*r.cfg.CardHeight
	r.doc.SetXY(x, y)
	r.doc.CellFormat(r.cfg.CardWidth, r.cfg.CardHeight, r.tr(card.Label), "0", 0, "CM", false, 0, "")
}

// PageCount returns the number of pages in the document so far.
func (r *PDFRenderer) PageCount() int {
	return r.doc.PageCount()
}

// Output finalizes the document and writes the PDF bytes to w.
// A plan with zero pages still produces a valid (empty) PDF document.
func (r *PDFRenderer) Output(w io.Writer) error {
	if err := r.doc.Output(w); err != nil {
		return cerrors.WrapRender(err, cerrors.ErrRenderFailed, "failed to build PDF document")
	}
	return nil
}
