package widget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/magpierre/fyne-flextable/flextable"
)

// canvasMeasurer measures text with the current theme's standard text size,
// matching how cell labels are rendered.
type canvasMeasurer struct{}

var _ flextable.TextMeasurer = canvasMeasurer{}

func (canvasMeasurer) TextWidth(text string) float32 {
	return fyne.MeasureText(text, theme.TextSize(), fyne.TextStyle{}).Width
}
