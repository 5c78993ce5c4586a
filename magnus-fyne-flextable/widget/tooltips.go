package widget

import (
	"fyne.io/fyne/v2"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
)

// WrapWithTooltips adds the tooltip rendering layer for a window's canvas
// around content. Wrap the DataTable (or any ancestor of it) with this
// before setting the window content, otherwise cell and header tooltips
// will not appear.
func WrapWithTooltips(content fyne.CanvasObject, canvas fyne.Canvas) fyne.CanvasObject {
	return fynetooltip.AddWindowToolTipLayer(content, canvas)
}
