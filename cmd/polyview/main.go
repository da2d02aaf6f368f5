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

// Polyview shows the polygon fill at work in the terminal: random
// quadrilaterals are filled, outlined and depth-composited onto a
// character-cell canvas.
//
// Keys: space draws a new set of shapes, d toggles the depth demo,
// q quits.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seehuhn.de/go/scanfill"
)

const (
	canvasWidth  = 72
	canvasHeight = 36
)

var (
	fillColor      = color.RGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}
	outlineColor   = color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}
	vertexColor    = color.RGBA{R: 0xFF, G: 0x5F, B: 0x5F, A: 0xFF}
	depthColorFar  = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	depthColorMid  = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	depthColorNear = color.RGBA{R: 0x7F, G: 0xFF, B: 0x7F, A: 0xFF}

	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// canvas is a character-cell pixel sink for the drawing primitives.
type canvas struct {
	width, height int
	cells         []color.Color
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		width:  width,
		height: height,
		cells:  make([]color.Color, width*height),
	}
}

// SetPixel implements scanfill.Target. Out-of-range writes are
// clipped.
func (c *canvas) SetPixel(x, y int, col color.Color) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return nil
	}
	c.cells[y*c.width+x] = col
	return nil
}

// String renders the canvas, one character per pixel.
func (c *canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell == nil {
				sb.WriteByte(' ')
				continue
			}
			r, g, b, _ := cell.RGBA()
			hex := fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█"))
		}
	}
	return sb.String()
}

type model struct {
	canvas    *canvas
	depthMode bool
	status    string
}

func newModel() model {
	m := model{status: "polyview ready"}
	m.redraw()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.redraw()
		case "d":
			m.depthMode = !m.depthMode
			m.redraw()
		}
	}
	return m, nil
}

func (m model) View() string {
	mode := "flat"
	if m.depthMode {
		mode = "depth"
	}
	header := titleStyle.Render("polyview") + dimStyle.Render("  mode: "+mode)
	help := dimStyle.Render("space: new shapes  d: depth mode  q: quit")
	return header + "\n" + m.canvas.String() + "\n" + help + "\n" + dimStyle.Render(m.status)
}

func (m *model) redraw() {
	m.canvas = newCanvas(canvasWidth, canvasHeight)

	var err error
	if m.depthMode {
		err = drawDepthScene(m.canvas)
	} else {
		err = drawFlatScene(m.canvas)
	}
	if err != nil {
		m.status = "draw error: " + err.Error()
		return
	}
	m.status = "drawn"
}

// drawFlatScene fills a random quadrilateral, strokes its outline and
// marks the vertices.
func drawFlatScene(target scanfill.Target) error {
	vertices := randomRing(4)

	p := scanfill.New(vertices)
	if err := p.Draw(scanfill.WithFill(fillColor), target); err != nil {
		return err
	}
	if err := p.Draw(scanfill.WithStroke(outlineColor, 1), target); err != nil {
		return err
	}
	for _, v := range vertices {
		if err := target.SetPixel(v.X, v.Y, vertexColor); err != nil {
			return err
		}
	}
	return nil
}

// drawDepthScene composites three overlapping triangles through one
// depth buffer; whichever face is nearer wins per pixel, independent
// of draw order.
func drawDepthScene(target scanfill.Target) error {
	buf := scanfill.NewDepthBuffer(canvasWidth, canvasHeight)

	colors := []color.Color{depthColorFar, depthColorMid, depthColorNear}
	for i, c := range colors {
		vertices := randomRing(3)
		depth := float32(i + 1)

		dv := make([]scanfill.DepthVertex, len(vertices))
		for j, v := range vertices {
			dv[j] = scanfill.DepthVertex{Point: v, Depth: depth}
		}
		p := scanfill.NewDepth(dv, buf)
		if err := p.Draw(scanfill.WithFill(c), target); err != nil {
			return err
		}
	}
	return nil
}

// randomRing returns n random vertices inside the canvas margins.
func randomRing(n int) []image.Point {
	pts := make([]image.Point, n)
	for i := range pts {
		pts[i] = image.Point{
			X: 4 + rand.Intn(canvasWidth-8),
			Y: 3 + rand.Intn(canvasHeight-6),
		}
	}
	return pts
}

func main() {
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
