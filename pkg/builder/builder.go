// Package builder wires the full pipeline together: load CSVs, expand
// weighted entries, balance front/back decks, plan pages, and render the
// PDF. One Run is a pure function from input files and configuration to an
// output PDF; nothing is kept between runs.
package builder

import (
	"bytes"
	"os"

	"go.uber.org/zap"

	"github.com/codeclub/cccards/pkg/cards"
	"github.com/codeclub/cccards/pkg/config"
	cerrors "github.com/codeclub/cccards/pkg/errors"
	"github.com/codeclub/cccards/pkg/layout"
	"github.com/codeclub/cccards/pkg/render"
)

// Builder generates a card PDF from CSV inputs.
type Builder struct {
	cfg *config.Config
	log *zap.Logger
}

// New creates a Builder. A nil logger disables logging.
func New(cfg *config.Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{cfg: cfg, log: logger}
}

// Run loads the front CSV (and the back CSV when backPath is non-empty),
// lays out the deck, and writes the PDF to the configured output path.
//
// The document is built fully in memory and written in one step at the
// end, so a failing run never leaves a partial or modified output file.
func (b *Builder) Run(frontPath, backPath string) error {
	delim := b.cfg.DelimiterRune()

	frontEntries, err := cards.LoadFile(frontPath, delim)
	if err != nil {
		return err
	}
	front := cards.Expand(frontEntries, 0)
	b.log.Debug("loaded front deck",
		zap.String("file", frontPath),
		zap.Int("entries", len(frontEntries)),
		zap.Int("cards", len(front)))

	var back cards.Deck
	if backPath != "" {
		backEntries, err := cards.LoadFile(backPath, delim)
		if err != nil {
			return err
		}
		back = cards.Expand(backEntries, 0)
		b.log.Debug("loaded back deck",
			zap.String("file", backPath),
			zap.Int("entries", len(backEntries)),
			zap.Int("cards", len(back)))
	}

	pair := layout.Balance(front, back, b.cfg.Wildcards)
	plan := layout.BuildPlan(pair)
	b.log.Debug("planned pages",
		zap.Bool("double_sided", pair.DoubleSided()),
		zap.Int("cards_per_side", len(pair.Front)),
		zap.Int("sheets", plan.Sheets()),
		zap.Int("pages", len(plan)))

	r := render.New(b.cfg.Render)
	plan.Render(r)

	var buf bytes.Buffer
	if err := r.Output(&buf); err != nil {
		return err
	}

	if err := os.WriteFile(b.cfg.Output, buf.Bytes(), 0644); err != nil {
		return cerrors.WrapIO(err, cerrors.ErrOutputWriteFailed, "cannot write output PDF").
			WithContext("file", b.cfg.Output)
	}
	b.log.Info("wrote PDF",
		zap.String("file", b.cfg.Output),
		zap.Int("bytes", buf.Len()))

	return nil
}
