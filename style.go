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
	"errors"
	"image/color"
)

// ErrNoFillColor is returned when a fill is requested by a style
// without a fill color.
var ErrNoFillColor = errors.New("scanfill: fill requested without fill color")

// Style selects between the two drawing modes. A zero StrokeWidth
// fills the interior with FillColor; a positive StrokeWidth draws the
// outline with StrokeColor instead, bypassing the fill machinery
// entirely.
type Style struct {
	FillColor   color.Color
	StrokeColor color.Color

	// StrokeWidth is the outline thickness in pixels. Must be >= 0.
	StrokeWidth int
}

// WithFill returns a style that fills the interior with c.
func WithFill(c color.Color) Style {
	return Style{FillColor: c}
}

// WithStroke returns a style that draws a width-pixel outline with c.
func WithStroke(c color.Color, width int) Style {
	return Style{StrokeColor: c, StrokeWidth: width}
}
