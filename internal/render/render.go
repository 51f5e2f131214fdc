// Package render draws a resolved container as a PNG preview: track
// outlines, each item's padded cell, and the item itself anchored by its
// sticky flags.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/grindlemire/go-tracks/internal/geometry"
	"github.com/grindlemire/go-tracks/internal/layout"
)

// Options control a preview.
type Options struct {
	Width, Height int

	// CellLabels prints each item's id and cell in its box.
	CellLabels bool

	// ItemWidth and ItemHeight are the natural size items are anchored with.
	// 0 sizes an item to its label.
	ItemWidth, ItemHeight int
}

// Item is one drawn item: its placement and the rectangles derived from it.
type Item struct {
	Placement layout.Placement
	Cell      geometry.Rect
	Box       geometry.Rect
}

// Renderer draws containers onto a fixed-size canvas. It is not safe for
// concurrent use; create one per goroutine.
type Renderer struct {
	context *gg.Context
	opts    Options
}

// NewRenderer creates a white Width x Height canvas using the 7x13 bitmap font.
func NewRenderer(opts Options) *Renderer {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetFontFace(basicfont.Face7x13)
	return &Renderer{context: dc, opts: opts}
}

// palette cycles per item id.
var palette = [][3]float64{
	{0.35, 0.55, 0.85},
	{0.90, 0.55, 0.25},
	{0.40, 0.75, 0.45},
	{0.80, 0.35, 0.45},
	{0.60, 0.45, 0.80},
	{0.30, 0.70, 0.75},
}

// Render draws c and returns each item's rectangles in attach order. Tracks
// whose minimum sizes overflow the canvas are clipped when drawn; the
// returned rectangles are not.
func (r *Renderer) Render(c *layout.Container) []Item {
	dc := r.context
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	canvas := geometry.NewRect(0, 0, r.opts.Width, r.opts.Height)
	g := geometry.Layout(c, canvas)
	r.drawTracks(g)

	placements := c.Placements()
	items := make([]Item, 0, len(placements))
	for _, p := range placements {
		label := fmt.Sprintf("#%d (%d,%d)", p.ID, p.Row, p.Col)
		w, h := r.naturalSize(label)
		it := Item{Placement: p, Cell: g.CellRect(p), Box: g.ItemRect(p, w, h)}
		if it.Cell.Intersects(canvas) || it.Box.Intersects(canvas) {
			r.drawItem(it, label, canvas)
		}
		items = append(items, it)
	}
	return items
}

func (r *Renderer) naturalSize(label string) (int, int) {
	w, h := r.opts.ItemWidth, r.opts.ItemHeight
	if w > 0 && h > 0 {
		return w, h
	}
	tw, th := r.context.MeasureString(label)
	if w <= 0 {
		w = int(tw) + 8
	}
	if h <= 0 {
		h = int(th) + 8
	}
	return w, h
}

func (r *Renderer) drawTracks(g geometry.Grid) {
	dc := r.context
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	for _, s := range g.Columns {
		dc.DrawLine(float64(s.End())+0.5, 0, float64(s.End())+0.5, float64(g.Bounds.Height))
	}
	for _, s := range g.Rows {
		dc.DrawLine(0, float64(s.End())+0.5, float64(g.Bounds.Width), float64(s.End())+0.5)
	}
	dc.Stroke()
}

func (r *Renderer) drawItem(it Item, label string, canvas geometry.Rect) {
	dc := r.context
	col := palette[it.Placement.ID%len(palette)]

	cell := it.Cell.Intersect(canvas)
	dc.SetRGBA(col[0], col[1], col[2], 0.2)
	dc.DrawRectangle(float64(cell.X), float64(cell.Y), float64(cell.Width), float64(cell.Height))
	dc.Fill()

	box := it.Box.Intersect(canvas)
	dc.SetRGB(col[0], col[1], col[2])
	dc.DrawRectangle(float64(box.X), float64(box.Y), float64(box.Width), float64(box.Height))
	dc.Fill()

	if r.opts.CellLabels && !box.IsEmpty() {
		dc.SetRGB(1, 1, 1)
		cx := float64(box.X) + float64(box.Width)/2
		cy := float64(box.Y) + float64(box.Height)/2
		dc.DrawStringAnchored(label, cx, cy, 0.5, 0.5)
	}
}

// Image returns the drawn preview.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the preview as a PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}

// SavePNG writes the preview to path.
func (r *Renderer) SavePNG(path string) error {
	return r.context.SavePNG(path)
}
