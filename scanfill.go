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

// Package scanfill fills polygons on integer pixel grids.
//
// The fill algorithm is the classic global/active edge table scanline
// sweep: the polygon's non-horizontal edges are sorted by their top
// vertex, a sweep line moves down one pixel row at a time, and the
// edges crossing the current row are paired by sorted x-intercept into
// horizontal spans. Intercepts are advanced incrementally by the
// edges' inverse slopes, so the cost per row is linear in the number
// of active edges.
//
// Two polygon variants are provided. [Polygon] fills with a flat
// color. [DepthPolygon] additionally interpolates a per-pixel depth
// from per-vertex depth values and writes each pixel through a shared
// [DepthBuffer], so overlapping faces drawn in any order resolve to
// the nearest surface.
//
// Pixels are written to a caller-supplied [Target]; errors from the
// target abort the draw and are returned unchanged.
package scanfill
