package cell

import "strings"

// Strip is an immutable horizontal line of Segments with a cached
// total width. Concatenating the segment texts in order reproduces
// the line; the cached width is never stale.
type Strip struct {
	segments []Segment
	width    int
}

// NewStrip creates a strip from segments, dropping empty ones.
func NewStrip(segments ...Segment) Strip {
	out := make([]Segment, 0, len(segments))
	width := 0
	for _, seg := range segments {
		if seg.IsEmpty() {
			continue
		}
		out = append(out, seg)
		width += seg.Width()
	}
	return Strip{segments: out, width: width}
}

// StripFromText creates a single-segment strip.
func StripFromText(text string, style Style) Strip {
	return NewStrip(NewSegment(text, style))
}

// BlankStrip creates a strip of width spaces.
func BlankStrip(width int, style Style) Strip {
	if width <= 0 {
		return Strip{}
	}
	return NewStrip(BlankSegment(width, style))
}

// Segments returns the ordered segments.
func (s Strip) Segments() []Segment {
	return s.segments
}

// Width returns the cached total display width.
func (s Strip) Width() int {
	return s.width
}

// IsEmpty returns true if the strip has no cells.
func (s Strip) IsEmpty() bool {
	return s.width == 0
}

// Text returns the unstyled text content.
func (s Strip) Text() string {
	var b strings.Builder
	for _, seg := range s.segments {
		b.WriteString(seg.Text())
	}
	return b.String()
}

// Crop returns the cell range [start, end). Out-of-range bounds are
// clamped; end <= start yields an empty strip. Boundary segments are
// sliced via SplitAt. Never panics.
func (s Strip) Crop(start, end int) Strip {
	if start < 0 {
		start = 0
	}
	if end > s.width {
		end = s.width
	}
	if start >= end {
		return Strip{}
	}

	out := make([]Segment, 0, len(s.segments))
	width := 0
	pos := 0
	for _, seg := range s.segments {
		segEnd := pos + seg.Width()
		if segEnd <= start {
			pos = segEnd
			continue
		}
		if pos >= end {
			break
		}

		localStart := start - pos
		if localStart < 0 {
			localStart = 0
		}
		localEnd := end - pos
		if localEnd > seg.Width() {
			localEnd = seg.Width()
		}

		piece := seg
		if localEnd < seg.Width() {
			piece, _ = piece.SplitAt(localEnd)
		}
		if localStart > 0 {
			_, piece = piece.SplitAt(localStart)
		}
		if !piece.IsEmpty() {
			out = append(out, piece)
			width += piece.Width()
		}
		pos = segEnd
	}
	return Strip{segments: out, width: width}
}

// PadTo appends filler spaces so the total width becomes exactly
// width. No-op if the strip is already at least that wide.
func (s Strip) PadTo(width int, fill Style) Strip {
	if s.width >= width {
		return s
	}
	segments := make([]Segment, len(s.segments), len(s.segments)+1)
	copy(segments, s.segments)
	segments = append(segments, BlankSegment(width-s.width, fill))
	return Strip{segments: segments, width: width}
}

// AdjustLength pads or crops the strip to exactly length cells.
func (s Strip) AdjustLength(length int, fill Style) Strip {
	switch {
	case s.width == length:
		return s
	case s.width > length:
		return s.Crop(0, length)
	default:
		return s.PadTo(length, fill)
	}
}

// Join concatenates strips horizontally. The result's width is the sum
// of the inputs' widths; interior content is not re-validated.
func Join(strips ...Strip) Strip {
	n := 0
	width := 0
	for _, st := range strips {
		n += len(st.segments)
		width += st.width
	}
	segments := make([]Segment, 0, n)
	for _, st := range strips {
		segments = append(segments, st.segments...)
	}
	return Strip{segments: segments, width: width}
}

// Divide splits the strip at the given ascending cell positions,
// returning one strip per span. Cuts outside (0, width] are skipped.
func (s Strip) Divide(cuts []int) []Strip {
	if len(cuts) == 0 {
		return []Strip{s}
	}
	out := make([]Strip, 0, len(cuts)+1)
	last := 0
	for _, cut := range cuts {
		if cut > last && cut <= s.width {
			out = append(out, s.Crop(last, cut))
			last = cut
		}
	}
	if last < s.width {
		out = append(out, s.Crop(last, s.width))
	}
	return out
}

// Simplify merges adjacent segments with identical styles.
func (s Strip) Simplify() Strip {
	if len(s.segments) <= 1 {
		return s
	}
	out := make([]Segment, 0, len(s.segments))
	var text strings.Builder
	current := s.segments[0].Style()
	text.WriteString(s.segments[0].Text())

	for _, seg := range s.segments[1:] {
		if seg.Style() == current {
			text.WriteString(seg.Text())
			continue
		}
		out = append(out, NewSegment(text.String(), current))
		text.Reset()
		current = seg.Style()
		text.WriteString(seg.Text())
	}
	out = append(out, NewSegment(text.String(), current))
	return NewStrip(out...)
}

// ApplyStyle layers over on every segment's style.
func (s Strip) ApplyStyle(over Style) Strip {
	segments := make([]Segment, len(s.segments))
	for i, seg := range s.segments {
		segments[i] = seg.ApplyStyle(over)
	}
	return Strip{segments: segments, width: s.width}
}
