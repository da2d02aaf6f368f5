package testcases

import "image"

var fillCases = []TestCase{
	{
		// Horizontal top and bottom edges are dropped; the two
		// vertical edges bound rows 1-3. The bottom row is open.
		Name:     "rectangle",
		Vertices: []image.Point{pt(1, 1), pt(6, 1), pt(6, 4), pt(1, 4)},
		Width:    8,
		Height:   6,
		Op:       Fill{},
		Want: []string{
			"........",
			".#####..",
			".#####..",
			".#####..",
			"........",
			"........",
		},
	},
	{
		// Span widths follow x = 4-y down the sloped edge.
		Name:     "triangle",
		Vertices: []image.Point{pt(0, 0), pt(4, 0), pt(0, 4)},
		Width:    5,
		Height:   5,
		Op:       Fill{},
		Want: []string{
			"####.",
			"###..",
			"##...",
			"#....",
			".....",
		},
	},
	{
		// Self-intersecting ring; the crossing at (2,2) collapses to
		// an empty span.
		Name:     "bowtie",
		Vertices: []image.Point{pt(0, 0), pt(4, 0), pt(0, 4), pt(4, 4)},
		Width:    5,
		Height:   5,
		Op:       Fill{},
		Want: []string{
			"####.",
			".##..",
			".....",
			".##..",
			".....",
		},
	},
	{
		// Apex vertices land exactly on integer scanlines; their rows
		// pair two equal intercepts into an empty span.
		Name:     "diamond",
		Vertices: []image.Point{pt(2, 0), pt(4, 2), pt(2, 4), pt(0, 2)},
		Width:    5,
		Height:   5,
		Op:       Fill{},
		Want: []string{
			".....",
			".##..",
			"####.",
			".##..",
			".....",
		},
	},
	{
		// Concave outline; a third edge joins the sweep midway down.
		Name:     "l_shape",
		Vertices: []image.Point{pt(0, 0), pt(2, 0), pt(2, 2), pt(4, 2), pt(4, 5), pt(0, 5)},
		Width:    5,
		Height:   6,
		Op:       Fill{},
		Want: []string{
			"##...",
			"##...",
			"####.",
			"####.",
			"####.",
			".....",
		},
	},
	{
		// Self-intersecting ring with horizontal edges; must draw
		// without error.
		Name:     "tangled",
		Vertices: []image.Point{pt(16, 20), pt(28, 10), pt(28, 16), pt(22, 10), pt(10, 10), pt(10, 16)},
		Width:    32,
		Height:   24,
		Op:       Fill{},
	},
	{
		// Degenerate input: nothing to fill, but also no error.
		Name:     "two_vertices",
		Vertices: []image.Point{pt(1, 1), pt(5, 4)},
		Width:    6,
		Height:   6,
		Op:       Fill{},
		Want: []string{
			"......",
			"......",
			"......",
			"......",
			"......",
			"......",
		},
	},
}
