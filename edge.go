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
	"slices"
)

// edge is one non-horizontal side of the polygon ring.
type edge struct {
	topX, topY int     // endpoint with the smaller y (anchor)
	bottomY    int     // larger of the two y values
	invSlope   float32 // Δx/Δy, the x advance per scanline
}

// edgeTable builds the global edge table for the given vertex ring.
// Consecutive vertices form the edges, the last vertex connecting back
// to the first. Horizontal edges contribute no scanline crossings and
// are dropped. Fewer than three vertices yield an empty table.
//
// The table is ordered by topY ascending, ties broken by topX
// ascending. The sweep relies on this: it only ever consumes the
// front of the table.
func edgeTable(vertices []image.Point) []edge {
	if len(vertices) < 3 {
		return nil
	}

	var table []edge
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		if v.Y == next.Y {
			continue
		}

		top := v
		if next.Y < v.Y {
			top = next
		}
		e := edge{
			topX:     top.X,
			topY:     top.Y,
			bottomY:  max(v.Y, next.Y),
			invSlope: float32(next.X-v.X) / float32(next.Y-v.Y),
		}
		table = insertEdge(table, e)
	}
	return table
}

// insertEdge inserts e into table, keeping the (topY, topX) ordering.
func insertEdge(table []edge, e edge) []edge {
	i := 0
	for i < len(table) && e.topY > table[i].topY {
		i++
	}
	for i < len(table) && e.topY == table[i].topY && e.topX > table[i].topX {
		i++
	}
	return slices.Insert(table, i, e)
}
