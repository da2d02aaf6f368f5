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
	"image/color"
	"image/draw"
)

// Target is the pixel sink the drawing primitives write into.
//
// Implementations should clip out-of-range coordinates rather than
// fail. A returned error aborts the draw call in progress and is
// passed back to the caller unchanged.
type Target interface {
	SetPixel(x, y int, c color.Color) error
}

// ImageTarget adapts a draw.Image as a Target. Writes outside the
// image bounds are discarded by the image itself.
type ImageTarget struct {
	Image draw.Image
}

// SetPixel implements the [Target] interface.
func (t ImageTarget) SetPixel(x, y int, c color.Color) error {
	t.Image.Set(x, y, c)
	return nil
}

// fillSpan writes the half-open pixel run [x0, x1) on row y.
func fillSpan(t Target, y, x0, x1 int, c color.Color) error {
	for x := x0; x < x1; x++ {
		if err := t.SetPixel(x, y, c); err != nil {
			return err
		}
	}
	return nil
}
