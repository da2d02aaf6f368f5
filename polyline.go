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
	"image/color"
)

// Polyline draws straight segments between consecutive points. It
// shares no state with the fill machinery; the polygon types delegate
// here for their outline mode.
type Polyline struct {
	Points []image.Point

	// Translate shifts every point before drawing.
	Translate image.Point
}

// Draw renders the polyline into target using the style's stroke
// color and width. Fewer than two points, a style without a stroke
// color, or a zero width draw nothing.
func (p *Polyline) Draw(style Style, target Target) error {
	if len(p.Points) < 2 || style.StrokeColor == nil || style.StrokeWidth < 1 {
		return nil
	}
	for i := 0; i+1 < len(p.Points); i++ {
		a := p.Points[i].Add(p.Translate)
		b := p.Points[i+1].Add(p.Translate)
		if err := line(target, a, b, style.StrokeColor, style.StrokeWidth); err != nil {
			return err
		}
	}
	return nil
}

// line plots the segment from a to b with Bresenham's algorithm. For
// widths above one, each plotted point is stamped as a width×width
// block centred on the point.
func line(t Target, a, b image.Point, c color.Color, width int) error {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}

	x, y := a.X, a.Y
	e := dx - dy
	for {
		if err := stamp(t, x, y, width, c); err != nil {
			return err
		}
		if x == b.X && y == b.Y {
			return nil
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
}

// stamp writes a width×width block of pixels centred on (x, y).
func stamp(t Target, x, y, width int, c color.Color) error {
	if width == 1 {
		return t.SetPixel(x, y, c)
	}
	r := width / 2
	for yy := y - r; yy < y-r+width; yy++ {
		for xx := x - r; xx < x-r+width; xx++ {
			if err := t.SetPixel(xx, yy, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
