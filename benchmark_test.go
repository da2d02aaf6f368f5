package scanfill

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkPolygonFill benchmarks the scanline fill on a hexagon.
func BenchmarkPolygonFill(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			p := New(hexagon(size))
			style := WithFill(color.White)
			target := ImageTarget{Image: dst}

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := p.Draw(style, target); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorFill benchmarks x/image/vector on the same hexagon,
// as a point of comparison. Note that the vector rasterizer computes
// anti-aliased coverage, which this package does not attempt.
func BenchmarkVectorFill(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			pts := hexagon(size)

			r := vector.NewRasterizer(size, size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, pt := range pts[1:] {
					r.LineTo(float32(pt.X), float32(pt.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// hexagon returns a regular hexagon filling most of a size×size
// canvas.
func hexagon(size int) []image.Point {
	c := float64(size) / 2
	radius := float64(size) * 0.45

	pts := make([]image.Point, 6)
	for i := range pts {
		angle := float64(i) * math.Pi / 3
		pts[i] = image.Point{
			X: int(math.Round(c + radius*math.Cos(angle))),
			Y: int(math.Round(c + radius*math.Sin(angle))),
		}
	}
	return pts
}
