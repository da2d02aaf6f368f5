// seehuhn.de/go/scanfill - a scanline polygon fill library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanfill

import (
	"image"
)

// Polygon is a closed ring of integer vertices. The ring is closed
// implicitly: the last vertex connects back to the first. Fewer than
// three vertices fill nothing.
//
// The vertex slice is read during a draw call only and not retained.
type Polygon struct {
	Vertices []image.Point

	// Translate shifts the outline before drawing. The fill sweep
	// consumes the vertices as given.
	Translate image.Point
}

// New returns a polygon over the given vertex ring.
func New(vertices []image.Point) *Polygon {
	return &Polygon{Vertices: vertices}
}

// BoundingBox returns the smallest rectangle enclosing all vertices.
func (p *Polygon) BoundingBox() image.Rectangle {
	return boundingBox(p.Vertices)
}

// Draw renders the polygon into target. A zero stroke width fills the
// interior with the style's fill color; a positive stroke width draws
// the closed outline instead, delegating to [Polyline]. Errors from
// the target are returned unchanged.
func (p *Polygon) Draw(style Style, target Target) error {
	if style.StrokeWidth > 0 {
		return p.outline(style, target)
	}

	if style.FillColor == nil {
		return ErrNoFillColor
	}
	c := style.FillColor
	return sweep(edgeTable(p.Vertices), func(y, x0, x1 int) error {
		return fillSpan(target, y, x0, x1, c)
	})
}

// outline draws the closed vertex ring as a polyline.
func (p *Polygon) outline(style Style, target Target) error {
	pl := &Polyline{
		Points:    closeRing(p.Vertices),
		Translate: p.Translate,
	}
	return pl.Draw(style, target)
}

// closeRing appends the first vertex so the outline returns to its
// start.
func closeRing(vertices []image.Point) []image.Point {
	if len(vertices) == 0 {
		return nil
	}
	closed := make([]image.Point, 0, len(vertices)+1)
	closed = append(closed, vertices...)
	return append(closed, vertices[0])
}

// boundingBox folds the vertex list into its enclosing rectangle.
func boundingBox(vertices []image.Point) image.Rectangle {
	if len(vertices) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		r.Min.X = min(r.Min.X, v.X)
		r.Min.Y = min(r.Min.Y, v.Y)
		r.Max.X = max(r.Max.X, v.X)
		r.Max.Y = max(r.Max.Y, v.Y)
	}
	return r
}
