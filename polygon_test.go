package scanfill

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestBoundingBox(t *testing.T) {
	p := New([]image.Point{
		{X: 10, Y: 10}, {X: 28, Y: 10}, {X: 28, Y: 16}, {X: 10, Y: 16},
	})
	bb := p.BoundingBox()

	if bb.Min != (image.Point{X: 10, Y: 10}) {
		t.Errorf("origin = %v, want (10,10)", bb.Min)
	}
	if bb.Dx() != 18 || bb.Dy() != 6 {
		t.Errorf("size = %dx%d, want 18x6", bb.Dx(), bb.Dy())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if bb := New(nil).BoundingBox(); bb != (image.Rectangle{}) {
		t.Errorf("empty polygon bounding box = %v", bb)
	}
}

func TestFillWithoutColor(t *testing.T) {
	p := New([]image.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}})
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))

	err := p.Draw(Style{}, ImageTarget{Image: dst})
	if !errors.Is(err, ErrNoFillColor) {
		t.Errorf("got %v, want ErrNoFillColor", err)
	}
}

// failTarget returns errBroken after limit successful writes.
type failTarget struct {
	limit  int
	writes int
}

var errBroken = errors.New("broken sink")

func (t *failTarget) SetPixel(x, y int, c color.Color) error {
	if t.writes >= t.limit {
		return errBroken
	}
	t.writes++
	return nil
}

func TestSinkErrorPropagates(t *testing.T) {
	p := New([]image.Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 8}})

	sink := &failTarget{limit: 3}
	err := p.Draw(WithFill(color.White), sink)
	if !errors.Is(err, errBroken) {
		t.Errorf("fill: got %v, want errBroken", err)
	}
	if sink.writes != 3 {
		t.Errorf("fill: %d writes before failure, want 3", sink.writes)
	}

	sink = &failTarget{limit: 0}
	err = p.Draw(WithStroke(color.White, 1), sink)
	if !errors.Is(err, errBroken) {
		t.Errorf("outline: got %v, want errBroken", err)
	}
}

// TestTranslateOutlineOnly checks that the translation offset moves
// the outline but not the fill.
func TestTranslateOutlineOnly(t *testing.T) {
	vertices := []image.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}}

	plain := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := New(vertices).Draw(WithFill(color.White), ImageTarget{Image: plain}); err != nil {
		t.Fatal(err)
	}

	moved := image.NewRGBA(image.Rect(0, 0, 8, 8))
	p := New(vertices)
	p.Translate = image.Point{X: 2, Y: 2}
	if err := p.Draw(WithFill(color.White), ImageTarget{Image: moved}); err != nil {
		t.Fatal(err)
	}
	if gridString(plain) != gridString(moved) {
		t.Error("fill moved with Translate")
	}

	outline := image.NewRGBA(image.Rect(0, 0, 8, 8))
	p = New(vertices)
	p.Translate = image.Point{X: 2, Y: 2}
	if err := p.Draw(WithStroke(color.White, 1), ImageTarget{Image: outline}); err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := outline.At(2, 2).RGBA(); a == 0 {
		t.Error("outline corner not shifted to (2,2)")
	}
	if _, _, _, a := outline.At(0, 0).RGBA(); a != 0 {
		t.Error("outline still drawn at origin")
	}
}

// TestOutlineClosure checks that the outline draws all N segments,
// connecting the last vertex back to the first.
func TestOutlineClosure(t *testing.T) {
	vertices := []image.Point{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6}}
	dst := image.NewRGBA(image.Rect(0, 0, 7, 7))

	if err := New(vertices).Draw(WithStroke(color.White, 1), ImageTarget{Image: dst}); err != nil {
		t.Fatal(err)
	}

	// The closing segment (0,6)-(0,0) supplies the left border.
	for y := 0; y <= 6; y++ {
		if _, _, _, a := dst.At(0, y).RGBA(); a == 0 {
			t.Errorf("left border missing at (0,%d)", y)
		}
	}
}
