package flextable

import "github.com/mattn/go-runewidth"

// autoSizePadding is the fixed visual padding added to measured text when
// auto-sizing a column.
const autoSizePadding float32 = 16

// TextMeasurer estimates the rendered pixel width of a string. Estimates must
// be deterministic for a given string; pixel-perfect fidelity is not
// required, only "wide enough to avoid clipping in the common case".
type TextMeasurer interface {
	TextWidth(text string) float32
}

// defaultCellWidth is the assumed pixel width of one terminal-style cell for
// the fallback measurer.
const defaultCellWidth float32 = 8

// cellMeasurer estimates text width from display cell counts. Wide (CJK)
// runes count as two cells. It is the model's fallback when no renderer-backed
// measurer has been set.
type cellMeasurer struct {
	cellWidth float32
}

// TextWidth implements TextMeasurer.
func (m cellMeasurer) TextWidth(text string) float32 {
	return float32(runewidth.StringWidth(text)) * m.cellWidth
}

// defaultMeasurer returns the fallback measurer.
func defaultMeasurer() TextMeasurer {
	return cellMeasurer{cellWidth: defaultCellWidth}
}
