package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	runningColor = color.NRGBA{R: 45, G: 160, B: 45, A: 255}
	stoppedColor = color.NRGBA{R: 110, G: 110, B: 110, A: 255}
)

// StatusLabel is a custom widget that shows the emulator run state as text
// on a colored background.
type StatusLabel struct {
	widget.BaseWidget
	text      string
	bgColor   color.Color
	textObj   *canvas.Text
	bgRect    *canvas.Rectangle
	container *fyne.Container
}

// NewStatusLabel creates a status label in the stopped state
func NewStatusLabel() *StatusLabel {
	sl := &StatusLabel{
		text:    "Stopped",
		bgColor: stoppedColor,
	}
	sl.ExtendBaseWidget(sl)
	return sl
}

// SetRunning updates the label to reflect the run state
func (sl *StatusLabel) SetRunning(running bool) {
	if running {
		sl.text = "Running"
		sl.bgColor = runningColor
	} else {
		sl.text = "Stopped"
		sl.bgColor = stoppedColor
	}
	sl.Refresh()
}

// CreateRenderer implements fyne.Widget
func (sl *StatusLabel) CreateRenderer() fyne.WidgetRenderer {
	sl.textObj = canvas.NewText(sl.text, color.White)
	sl.textObj.Alignment = fyne.TextAlignCenter

	sl.bgRect = canvas.NewRectangle(sl.bgColor)

	sl.container = container.NewStack(sl.bgRect, sl.textObj)

	return &statusLabelRenderer{
		label:     sl,
		container: sl.container,
	}
}

// statusLabelRenderer implements fyne.WidgetRenderer
type statusLabelRenderer struct {
	label     *StatusLabel
	container *fyne.Container
}

func (r *statusLabelRenderer) MinSize() fyne.Size {
	return r.container.MinSize()
}

func (r *statusLabelRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *statusLabelRenderer) Refresh() {
	r.label.textObj.Text = r.label.text
	r.label.bgRect.FillColor = r.label.bgColor
	r.label.textObj.Refresh()
	r.label.bgRect.Refresh()
}

func (r *statusLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *statusLabelRenderer) Destroy() {
}
