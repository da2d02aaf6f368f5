package testcases

import "image"

var outlineCases = []TestCase{
	{
		// All four borders, including the closing segment back to the
		// first vertex.
		Name:     "square_border",
		Vertices: []image.Point{pt(0, 0), pt(3, 0), pt(3, 3), pt(0, 3)},
		Width:    4,
		Height:   4,
		Op:       Outline{Width: 1},
		Want: []string{
			"####",
			"#..#",
			"#..#",
			"####",
		},
	},
	{
		Name:     "triangle_border",
		Vertices: []image.Point{pt(0, 0), pt(4, 0), pt(0, 4)},
		Width:    5,
		Height:   5,
		Op:       Outline{Width: 1},
		Want: []string{
			"#####",
			"#..#.",
			"#.#..",
			"##...",
			"#....",
		},
	},
	{
		// A fat stroke stamps 3x3 blocks along the segments.
		Name:     "thick_segment",
		Vertices: []image.Point{pt(2, 2), pt(6, 2), pt(6, 6)},
		Width:    9,
		Height:   9,
		Op:       Outline{Width: 3},
	},
}
