package widget

import (
	"strings"

	"github.com/lixenwraith/weft/canvas"
	"github.com/lixenwraith/weft/cell"
)

// Label renders styled text, one strip per line, cropped to its
// region.
type Label struct {
	Text  string
	Style cell.Style
}

// NewLabel creates a label.
func NewLabel(text string, style cell.Style) *Label {
	return &Label{Text: text, Style: style}
}

func (l *Label) strips() []cell.Strip {
	lines := strings.Split(l.Text, "\n")
	strips := make([]cell.Strip, len(lines))
	for i, line := range lines {
		strips[i] = cell.StripFromText(line, l.Style)
	}
	return strips
}

// Measure returns the text block's natural size: widest line by line
// count, capped at avail.
func (l *Label) Measure(avail canvas.Size) canvas.Size {
	width, height := 0, 0
	for _, s := range l.strips() {
		if w := s.Width(); w > width {
			width = w
		}
		height++
	}
	return canvas.Size{Width: min(width, avail.Width), Height: min(height, avail.Height)}
}

// Paint draws the text into region, cropping each line to the region
// width and dropping lines past the region height.
func (l *Label) Paint(cv *canvas.Canvas, region canvas.Region) {
	for i, s := range l.strips() {
		if i >= region.Height {
			break
		}
		cv.RenderStrip(s.Crop(0, region.Width), region.X, region.Y+i)
	}
}

// Static renders pre-built strips without re-deriving them each paint.
// Suited to content that changes rarely relative to the frame rate.
type Static struct {
	Strips []cell.Strip
}

// NewStatic creates a static widget from strips.
func NewStatic(strips ...cell.Strip) *Static {
	return &Static{Strips: strips}
}

// Measure returns the strip block's natural size capped at avail.
func (s *Static) Measure(avail canvas.Size) canvas.Size {
	width := 0
	for _, strip := range s.Strips {
		if w := strip.Width(); w > width {
			width = w
		}
	}
	return canvas.Size{Width: min(width, avail.Width), Height: min(len(s.Strips), avail.Height)}
}

// Paint draws the strips on successive rows, cropped to the region.
func (s *Static) Paint(cv *canvas.Canvas, region canvas.Region) {
	for i, strip := range s.Strips {
		if i >= region.Height {
			break
		}
		cv.RenderStrip(strip.Crop(0, region.Width), region.X, region.Y+i)
	}
}
