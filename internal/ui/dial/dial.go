package dial

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	segmentCount = 180
	ringStroke   = float32(9)
	minSide      = float32(230)
)

var trackColor = color.NRGBA{R: 120, G: 120, B: 120, A: 60}

// Dial is a circular progress indicator. The filled arc grows clockwise from
// 12 o'clock as progress moves from 0 to 1.
type Dial struct {
	widget.BaseWidget
	progress float64
	arcColor color.Color
}

// New creates an empty dial drawn in the given arc color.
func New(arcColor color.Color) *Dial {
	dial := &Dial{arcColor: arcColor}
	dial.ExtendBaseWidget(dial)
	return dial
}

// SetProgress updates the filled fraction, clamped to [0, 1].
func (dial *Dial) SetProgress(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	dial.progress = progress
	dial.Refresh()
}

// SetColor changes the arc color.
func (dial *Dial) SetColor(arcColor color.Color) {
	dial.arcColor = arcColor
	dial.Refresh()
}

// CreateRenderer builds the dial renderer.
func (dial *Dial) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewCircle(color.Transparent)
	track.StrokeColor = trackColor
	track.StrokeWidth = ringStroke

	segments := make([]*canvas.Line, segmentCount)
	objects := make([]fyne.CanvasObject, 0, segmentCount+1)
	objects = append(objects, track)
	for i := range segments {
		segment := canvas.NewLine(dial.arcColor)
		segment.StrokeWidth = ringStroke
		segment.Hide()
		segments[i] = segment
		objects = append(objects, segment)
	}

	return &dialRenderer{
		dial:     dial,
		track:    track,
		segments: segments,
		objects:  objects,
	}
}

type dialRenderer struct {
	dial     *Dial
	track    *canvas.Circle
	segments []*canvas.Line
	objects  []fyne.CanvasObject
}

func (renderer *dialRenderer) Layout(size fyne.Size) {
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	radius := side/2 - ringStroke
	if radius < 0 {
		radius = 0
	}
	center := fyne.NewPos(size.Width/2, size.Height/2)

	renderer.track.Move(fyne.NewPos(center.X-radius, center.Y-radius))
	renderer.track.Resize(fyne.NewSize(radius*2, radius*2))

	for i, segment := range renderer.segments {
		segment.Position1 = pointOnRing(center, radius, segmentAngle(i))
		segment.Position2 = pointOnRing(center, radius, segmentAngle(i+1))
	}
	renderer.applyProgress()
}

func (renderer *dialRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minSide, minSide)
}

func (renderer *dialRenderer) Refresh() {
	renderer.applyProgress()
	canvas.Refresh(renderer.dial)
}

func (renderer *dialRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *dialRenderer) Destroy() {}

func (renderer *dialRenderer) applyProgress() {
	visible := int(renderer.dial.progress*segmentCount + 0.5)
	for i, segment := range renderer.segments {
		segment.StrokeColor = renderer.dial.arcColor
		if i < visible {
			segment.Show()
		} else {
			segment.Hide()
		}
	}
}

// segmentAngle returns the ring angle of segment boundary i, in radians.
// Zero progress sits at 12 o'clock and the arc advances clockwise.
func segmentAngle(i int) float64 {
	return -math.Pi/2 + 2*math.Pi*float64(i)/segmentCount
}

func pointOnRing(center fyne.Position, radius float32, angle float64) fyne.Position {
	x := center.X + radius*float32(math.Cos(angle))
	y := center.Y + radius*float32(math.Sin(angle))
	return fyne.NewPos(x, y)
}
