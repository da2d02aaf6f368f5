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
	"cmp"
	"math"
	"slices"
)

// active is an edge currently crossed by the sweep line.
type active struct {
	bottomY  int
	x        float32 // current intercept, seeded from the anchor x
	invSlope float32
}

// sweep runs the scanline sweep over the edge table, calling span once
// for each half-open pixel run [x0, x1) on row y. The first error from
// span aborts the sweep.
//
// The table must be ordered as produced by edgeTable. The sweep
// consumes it from the front: edges join the active list when the
// sweep line reaches their top y and leave when it reaches their
// bottom y, so shared vertices are not counted twice. Before each row
// the active list is sorted by current intercept; consecutive pairs
// bound the interior (even-odd over sorted crossings), which handles
// concave and self-intersecting rings alike. An unpaired trailing
// intercept, from a vertex touching the row exactly, is ignored for
// that row.
func sweep(table []edge, span func(y, x0, x1 int) error) error {
	if len(table) < 2 {
		return nil
	}

	scanLine := table[0].topY
	var act []active
	for len(table) > 0 && table[0].topY <= scanLine {
		act = append(act, activate(table[0]))
		table = table[1:]
	}

	for {
		for i := 0; i+1 < len(act); i += 2 {
			x0 := int(math.Round(float64(act[i].x)))
			x1 := int(math.Round(float64(act[i+1].x)))
			if err := span(scanLine, x0, x1); err != nil {
				return err
			}
		}

		scanLine++

		// Drop edges fully swept, advance the intercepts of the rest.
		kept := act[:0]
		for _, a := range act {
			if a.bottomY == scanLine {
				continue
			}
			a.x += a.invSlope
			kept = append(kept, a)
		}
		act = kept

		for len(table) > 0 && table[0].topY == scanLine {
			act = append(act, activate(table[0]))
			table = table[1:]
		}

		if len(act) == 0 {
			return nil
		}
		slices.SortStableFunc(act, func(a, b active) int {
			return cmp.Compare(a.x, b.x)
		})
	}
}

// activate seeds an active-list entry from an edge table entry.
func activate(e edge) active {
	return active{
		bottomY:  e.bottomY,
		x:        float32(e.topX),
		invSlope: e.invSlope,
	}
}
