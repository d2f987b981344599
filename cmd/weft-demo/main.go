// weft-demo renders a static widget tree to the terminal and animates
// a scrolling pane, exercising track layout, grid placement, the
// differential flush, and scrollbar geometry.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/weft/canvas"
	"github.com/lixenwraith/weft/cell"
	"github.com/lixenwraith/weft/layout"
	"github.com/lixenwraith/weft/scroll"
	"github.com/lixenwraith/weft/theme"
	"github.com/lixenwraith/weft/widget"
)

var (
	themePath string
	frames    int
	fps       int
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "weft-demo",
		Short: "Render a demo layout with differential terminal output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&themePath, "theme", "", "path to a TOML theme file")
	root.Flags().IntVar(&frames, "frames", 120, "number of frames to render")
	root.Flags().IntVar(&fps, "fps", 30, "frame rate")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "weft-demo"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	th, err := theme.LoadOrDefault(themePath)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	} else {
		logger.Debug("Size detection failed, using fallback", "err", err)
	}
	logger.Debug("Surface sized", "width", width, "height", height)

	content := make([]string, 200)
	for i := range content {
		content[i] = fmt.Sprintf("line %3d of scrollable content", i+1)
	}

	cv := canvas.NewCanvas(width, height)
	out := os.Stdout

	// Alternate screen, hidden cursor; restored on exit
	fmt.Fprint(out, "\x1b[?1049h\x1b[?25l")
	defer fmt.Fprint(out, "\x1b[?25h\x1b[?1049l")

	vp := &scroll.Viewport{}
	interval := time.Second / time.Duration(max(fps, 1))
	start := time.Now()

	for frame := 0; frame < frames; frame++ {
		cv.Clear()
		paintFrame(cv, th, content, vp, frame)
		if err := cv.Flush(out); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
		time.Sleep(interval)
	}

	elapsed := time.Since(start)
	logger.Info("Done", "frames", frames, "elapsed", elapsed.Round(time.Millisecond))
	return nil
}

// paintFrame builds and paints the demo tree for one frame.
func paintFrame(cv *canvas.Canvas, th theme.Theme, content []string, vp *scroll.Viewport, frame int) {
	size := cv.Size()
	surface := canvas.NewRegion(0, 0, size.Width, size.Height)
	cv.Fill(cell.Style{Bg: th.Bg})

	paneHeight := size.Height - 2
	vp.SetDimensions(len(content), paneHeight)
	vp.ScrollTo(frame % (vp.MaxOffset() + 1))

	visible := content[vp.Offset:min(vp.Offset+vp.Window, len(content))]
	strips := make([]cell.Strip, len(visible))
	for i, line := range visible {
		strips[i] = cell.StripFromText(line, th.FgStyle())
	}

	pane := widget.NewHorizontal(
		widget.Child{Widget: widget.NewStatic(strips...), Spec: layout.Fr(1)},
		widget.Child{
			Widget: &scrollbarWidget{viewport: vp, thumb: th.ScrollThumb, track: th.ScrollTrack},
			Spec:   layout.Cells(1),
		},
	)

	side := widget.NewGrid(1, 3,
		widget.GridChild{Widget: widget.NewLabel("tracks", cell.Style{Fg: th.Accent, Bg: th.Bg})},
		widget.GridChild{Widget: widget.NewLabel("spans", cell.Style{Fg: th.HintFg, Bg: th.Bg})},
		widget.GridChild{Widget: widget.NewLabel("diff", cell.Style{Fg: th.Warning, Bg: th.Bg})},
	)
	side.Rows = []layout.TrackSpec{layout.Fr(1)}
	side.Bordered = true
	side.Line = canvas.LineRounded
	side.BorderStyle = th.BorderStyle()

	body := widget.NewHorizontal(
		widget.Child{Widget: pane, Spec: layout.Fr(3)},
		widget.Child{Widget: side, Spec: layout.Fr(1)},
	)
	body.Gutter = 1

	header := widget.NewLabel(" weft demo", cell.Style{Fg: th.HeaderFg, Bg: th.HeaderBg, Attr: cell.AttrBold})
	footer := widget.NewLabel(
		fmt.Sprintf(" frame %d  offset %d/%d", frame, vp.Offset, vp.MaxOffset()),
		cell.Style{Fg: th.StatusFg, Bg: th.Bg},
	)

	tree := widget.NewVertical(
		widget.Child{Widget: header, Spec: layout.Cells(1)},
		widget.Child{Widget: body, Spec: layout.Fr(1)},
		widget.Child{Widget: footer, Spec: layout.Cells(1)},
	)
	tree.Paint(cv, surface)
}

// scrollbarWidget adapts scrollbar drawing to the widget interface.
type scrollbarWidget struct {
	viewport *scroll.Viewport
	thumb    cell.Color
	track    cell.Color
}

func (s *scrollbarWidget) Measure(avail canvas.Size) canvas.Size {
	return canvas.Size{Width: 1, Height: avail.Height}
}

func (s *scrollbarWidget) Paint(cv *canvas.Canvas, region canvas.Region) {
	scroll.DrawVertical(cv, region,
		float64(s.viewport.Content), float64(s.viewport.Window), float64(s.viewport.Offset),
		s.thumb, s.track)
}
