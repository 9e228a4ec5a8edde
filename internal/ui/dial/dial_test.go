package dial

import (
	"image/color"
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestPointOnRing(t *testing.T) {
	center := fyne.NewPos(100, 100)
	const radius = float32(50)

	tests := []struct {
		name  string
		angle float64
		want  fyne.Position
	}{
		{"twelve o'clock", -math.Pi / 2, fyne.NewPos(100, 50)},
		{"three o'clock", 0, fyne.NewPos(150, 100)},
		{"six o'clock", math.Pi / 2, fyne.NewPos(100, 150)},
		{"nine o'clock", math.Pi, fyne.NewPos(50, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointOnRing(center, radius, tt.angle)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("pointOnRing(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestSegmentAngleStartsAtTopAndWrapsOnce(t *testing.T) {
	if got := segmentAngle(0); got != -math.Pi/2 {
		t.Errorf("segmentAngle(0) = %v, want -pi/2", got)
	}
	quarter := segmentAngle(segmentCount / 4)
	if math.Abs(quarter) > 1e-9 {
		t.Errorf("quarter angle = %v, want 0 (three o'clock)", quarter)
	}
	full := segmentAngle(segmentCount)
	if math.Abs(full-3*math.Pi/2) > 1e-9 {
		t.Errorf("full angle = %v, want 3pi/2", full)
	}
}

func TestSetProgressClamps(t *testing.T) {
	dial := New(color.NRGBA{R: 255, A: 255})
	window := test.NewWindow(dial)
	defer window.Close()

	dial.SetProgress(1.7)
	if dial.progress != 1 {
		t.Errorf("progress = %v, want clamp to 1", dial.progress)
	}
	dial.SetProgress(-0.3)
	if dial.progress != 0 {
		t.Errorf("progress = %v, want clamp to 0", dial.progress)
	}
}

func TestRendererShowsProgressFraction(t *testing.T) {
	dial := New(color.NRGBA{R: 255, A: 255})
	dial.progress = 0.5

	renderer := dial.CreateRenderer().(*dialRenderer)
	renderer.Layout(fyne.NewSize(300, 300))

	visible := 0
	for _, segment := range renderer.segments {
		if segment.Visible() {
			visible++
		}
	}
	if visible != segmentCount/2 {
		t.Errorf("visible segments = %d, want %d", visible, segmentCount/2)
	}

	for _, segment := range renderer.segments {
		dx := float64(segment.Position1.X - 150)
		dy := float64(segment.Position1.Y - 150)
		radius := math.Sqrt(dx*dx + dy*dy)
		if math.Abs(radius-141) > 0.5 {
			t.Fatalf("segment start radius = %v, want 141", radius)
		}
	}
}
