package cell

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Segment is an immutable styled text run with a cached display width.
// The width is computed once at construction and holds the invariant
// width == display width of text for the segment's whole lifetime.
type Segment struct {
	text  string
	style Style
	width int
}

// NewSegment creates a segment, sanitizing invalid UTF-8 and caching
// the display width. Empty text yields width 0.
func NewSegment(text string, style Style) Segment {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return Segment{
		text:  text,
		style: style,
		width: runewidth.StringWidth(text),
	}
}

// BlankSegment creates a segment of width spaces.
func BlankSegment(width int, style Style) Segment {
	if width <= 0 {
		return Segment{style: style}
	}
	return Segment{
		text:  strings.Repeat(" ", width),
		style: style,
		width: width,
	}
}

// Text returns the text content.
func (s Segment) Text() string {
	return s.text
}

// Style returns the segment's style.
func (s Segment) Style() Style {
	return s.style
}

// Width returns the cached display width in terminal cells.
func (s Segment) Width() int {
	return s.width
}

// IsEmpty returns true if the segment has no text.
func (s Segment) IsEmpty() bool {
	return s.text == ""
}

// WithStyle returns a copy with the style replaced.
func (s Segment) WithStyle(style Style) Segment {
	s.style = style
	return s
}

// ApplyStyle returns a copy with over layered on the current style.
func (s Segment) ApplyStyle(over Style) Segment {
	s.style = s.style.Apply(over)
	return s
}

// SplitAt divides the segment at a cell column. Both halves re-derive
// their widths from their own text. The cut never lands inside a
// grapheme cluster or wide glyph; a cut mid-glyph rounds down to the
// glyph's start, so the left half may be narrower than requested.
func (s Segment) SplitAt(column int) (Segment, Segment) {
	if column <= 0 {
		return Segment{style: s.style}, s
	}
	if column >= s.width {
		return s, Segment{style: s.style}
	}

	cells := 0
	bytePos := 0
	g := uniseg.NewGraphemes(s.text)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if cells+w > column {
			break
		}
		cells += w
		bytePos += len(cluster)
	}

	left := Segment{
		text:  s.text[:bytePos],
		style: s.style,
		width: cells,
	}
	right := Segment{
		text:  s.text[bytePos:],
		style: s.style,
		width: runewidth.StringWidth(s.text[bytePos:]),
	}
	return left, right
}
