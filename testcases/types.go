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

// Package testcases defines the polygon drawing scenarios shared by
// the tests and the demo.
package testcases

import "image"

// TestCase defines a single drawing test.
type TestCase struct {
	Name     string        // lowercase a-z and _ only
	Vertices []image.Point // the polygon ring
	Width    int           // canvas width in pixels
	Height   int           // canvas height in pixels
	Op       Operation     // fill or outline
	Want     []string      // expected rows, '#' drawn and '.' empty; nil to only require success
}

// Operation is the drawing operation to apply to the polygon.
type Operation interface {
	isOperation()
}

// Fill specifies a flat interior fill.
type Fill struct{}

func (Fill) isOperation() {}

// Outline specifies an outline draw with the given stroke width.
type Outline struct {
	Width int // stroke width (>= 1)
}

func (Outline) isOperation() {}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
