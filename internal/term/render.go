// Package term draws a solved widget tree into a grid of terminal cells and
// renders it as styled text.
package term

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/agiangrant/alertsheet/retained"
)

// Options controls how points map to cells and how states are drawn.
type Options struct {
	// CellWidth and CellHeight are the size of one terminal cell in points.
	CellWidth  float32
	CellHeight float32

	// Backdrop is the color behind the whole tree (RGBA).
	Backdrop uint32

	// HighlightColor fills pressed and armed buttons (RGBA).
	HighlightColor uint32

	// FrostColor is blended over the backdrop of blur surfaces without a
	// tint (RGBA).
	FrostColor uint32
}

// DefaultOptions returns options for a typical 8x16 terminal font.
func DefaultOptions() Options {
	return Options{
		CellWidth:      8,
		CellHeight:     16,
		Backdrop:       0x2B2D42FF,
		HighlightColor: 0xD1D1D6FF,
		FrostColor:     0xF2F2F7C0,
	}
}

// MeasureTextWidth measures text the way the renderer draws it: one cell
// per rune. Install it with retained.SetMeasureTextWidthFunc so layout and
// drawing agree.
func (o Options) MeasureTextWidth(text string, _ retained.Font) float32 {
	return float32(utf8.RuneCountInString(text)) * o.CellWidth
}

// Cell is one terminal cell.
type Cell struct {
	Rune rune
	FG   colorful.Color
	BG   colorful.Color
}

// Grid is a rectangle of cells, row-major.
type Grid struct {
	Cols, Rows int
	Cells      [][]Cell
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	return g.Cells[y][x]
}

// Line returns the runes of row y as a string.
func (g *Grid) Line(y int) string {
	var b strings.Builder
	for _, c := range g.Cells[y] {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// Renderer draws widget trees.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer.
func NewRenderer(opts Options) *Renderer {
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		d := DefaultOptions()
		opts.CellWidth, opts.CellHeight = d.CellWidth, d.CellHeight
	}
	return &Renderer{opts: opts}
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options { return r.opts }

// transform maps layout points to screen points: p' = a*p + b.
type transform struct {
	a, bx, by float32
}

var identity = transform{a: 1}

func (t transform) rect(b retained.Bounds) rect {
	return rect{
		x0: t.a*b.X + t.bx,
		y0: t.a*b.Y + t.by,
		x1: t.a*(b.X+b.Width) + t.bx,
		y1: t.a*(b.Y+b.Height) + t.by,
	}
}

// then composes t with a widget's own scale (around its center) and
// vertical offset.
func (t transform) then(w *retained.Widget) transform {
	s := w.Scale()
	f := w.Frame()
	cx, cy := f.X+f.Width/2, f.Y+f.Height/2
	return transform{
		a:  t.a * s,
		bx: t.a*cx*(1-s) + t.bx,
		by: t.a*(cy*(1-s)+w.TranslateY()) + t.by,
	}
}

type rect struct {
	x0, y0, x1, y1 float32
}

func (r rect) intersect(o rect) rect {
	return rect{
		x0: max(r.x0, o.x0),
		y0: max(r.y0, o.y0),
		x1: min(r.x1, o.x1),
		y1: min(r.y1, o.y1),
	}
}

// Draw paints root into a grid of cols x rows cells.
func (r *Renderer) Draw(root *retained.Widget, cols, rows int) *Grid {
	g := &Grid{Cols: cols, Rows: rows, Cells: make([][]Cell, rows)}
	backdrop := toColor(r.opts.Backdrop)
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, cols)
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell{Rune: ' ', FG: backdrop, BG: backdrop}
		}
	}

	screen := rect{x1: float32(cols) * r.opts.CellWidth, y1: float32(rows) * r.opts.CellHeight}
	if root != nil {
		r.draw(g, root, identity, screen, 1)
	}
	return g
}

func (r *Renderer) draw(g *Grid, w *retained.Widget, parent transform, clip rect, opacity float32) {
	if w.IsHidden() {
		return
	}
	opacity *= w.Opacity()
	if opacity <= 0 {
		return
	}

	t := parent.then(w)
	area := t.rect(w.Frame())
	visible := area.intersect(clip)

	switch {
	case w.Kind() == retained.KindEffect:
		r.drawEffect(g, w.Effect(), visible, opacity)
	case w.Kind() == retained.KindButton && w.IsHighlighted():
		r.fill(g, visible, toColor(r.opts.HighlightColor), alphaOf(r.opts.HighlightColor)*opacity)
	default:
		if color, ok := w.BackgroundColor(); ok {
			r.fill(g, visible, toColor(color), alphaOf(color)*opacity)
		}
	}

	switch w.Kind() {
	case retained.KindLabel:
		r.drawText(g, w, area, visible, opacity, false)
	case retained.KindButton:
		r.drawText(g, w, area, visible, opacity, true)
	}

	childClip := clip
	if w.MasksToBounds() {
		childClip = visible
	}
	for _, child := range w.Children() {
		r.draw(g, child, t, childClip, opacity)
	}
}

func (r *Renderer) drawEffect(g *Grid, effect *retained.Effect, area rect, opacity float32) {
	if effect == nil || effect.Kind != retained.EffectBlur {
		return
	}
	frost := r.opts.FrostColor
	if effect.Tint != 0 {
		frost = effect.Tint
	}
	r.fill(g, area, toColor(frost), alphaOf(frost)*opacity)
}

// cells converts a screen rect to the cell range it covers.
func (r *Renderer) cells(g *Grid, area rect) (c0, r0, c1, r1 int) {
	c0 = clampInt(int(math.Round(float64(area.x0/r.opts.CellWidth))), 0, g.Cols)
	c1 = clampInt(int(math.Round(float64(area.x1/r.opts.CellWidth))), 0, g.Cols)
	r0 = clampInt(int(math.Round(float64(area.y0/r.opts.CellHeight))), 0, g.Rows)
	r1 = clampInt(int(math.Round(float64(area.y1/r.opts.CellHeight))), 0, g.Rows)
	return
}

func (r *Renderer) fill(g *Grid, area rect, color colorful.Color, alpha float32) {
	if alpha <= 0 {
		return
	}
	c0, r0, c1, r1 := r.cells(g, area)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			cell := &g.Cells[y][x]
			cell.BG = cell.BG.BlendRgb(color, float64(min(alpha, 1)))
			if cell.Rune == ' ' {
				cell.FG = cell.BG
			}
		}
	}
}

func (r *Renderer) drawText(g *Grid, w *retained.Widget, area, visible rect, opacity float32, center bool) {
	text := w.Text()
	if text == "" || opacity < 0.5 {
		return
	}
	font := w.Font()
	fg := toColor(w.TextColor())
	scale := area.x1 - area.x0
	if frame := w.Frame(); frame.Width > 0 {
		scale /= frame.Width
	}

	lines := retained.WrapText(text, font, w.Frame().Width)
	c0, _, c1, _ := r.cells(g, area)
	vc0, vr0, vc1, vr1 := r.cells(g, visible)
	lineHeight := font.LineHeight() * scale

	for i, line := range lines {
		y := area.y0 + float32(i)*lineHeight
		if center {
			y = area.y0 + (area.y1-area.y0-lineHeight)/2
		}
		row := int(math.Round(float64(y / r.opts.CellHeight)))
		if row < vr0 || row >= vr1 {
			continue
		}

		runes := []rune(line)
		col := c0
		if center {
			col = c0 + (c1-c0-len(runes))/2
		}
		for j, ch := range runes {
			x := col + j
			if x < vc0 || x >= vc1 {
				continue
			}
			cell := &g.Cells[row][x]
			cell.Rune = ch
			cell.FG = cell.BG.BlendRgb(fg, float64(min(opacity, 1)))
		}
	}
}

// Render draws root and returns it as styled terminal text, one line per
// row.
func (r *Renderer) Render(root *retained.Widget, cols, rows int) string {
	return r.Draw(root, cols, rows).String()
}

// String renders the grid with lipgloss, merging runs of equally styled
// cells.
func (g *Grid) String() string {
	lines := make([]string, 0, g.Rows)
	for _, row := range g.Cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			var run strings.Builder
			for _, c := range row[start:x] {
				run.WriteRune(c.Rune)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(row[start].FG.Hex())).
				Background(lipgloss.Color(row[start].BG.Hex()))
			b.WriteString(style.Render(run.String()))
			start = x
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func sameStyle(a, b Cell) bool {
	return a.FG.Hex() == b.FG.Hex() && a.BG.Hex() == b.BG.Hex()
}

func toColor(rgba uint32) colorful.Color {
	return colorful.Color{
		R: float64(rgba>>24&0xFF) / 255,
		G: float64(rgba>>16&0xFF) / 255,
		B: float64(rgba>>8&0xFF) / 255,
	}
}

func alphaOf(rgba uint32) float32 {
	return float32(rgba&0xFF) / 255
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
