package scanfill

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPolylineTranslate(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	p := &Polyline{
		Points:    []image.Point{{X: 0, Y: 0}, {X: 2, Y: 0}},
		Translate: image.Point{X: 1, Y: 1},
	}
	if err := p.Draw(WithStroke(color.White, 1), ImageTarget{Image: dst}); err != nil {
		t.Fatal(err)
	}

	for x := 1; x <= 3; x++ {
		if _, _, _, a := dst.At(x, 1).RGBA(); a == 0 {
			t.Errorf("pixel (%d,1) not drawn", x)
		}
	}
	if _, _, _, a := dst.At(0, 0).RGBA(); a != 0 {
		t.Error("untranslated pixel drawn at (0,0)")
	}
}

func TestPolylineWidth(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	p := &Polyline{
		Points: []image.Point{{X: 2, Y: 2}, {X: 5, Y: 2}},
	}
	if err := p.Draw(WithStroke(color.White, 3), ImageTarget{Image: dst}); err != nil {
		t.Fatal(err)
	}

	// A width-3 stroke covers one row above and below the segment.
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 6; x++ {
			if _, _, _, a := dst.At(x, y).RGBA(); a == 0 {
				t.Errorf("pixel (%d,%d) not covered", x, y)
			}
		}
	}
	if _, _, _, a := dst.At(3, 0).RGBA(); a != 0 {
		t.Error("stroke leaked above the band")
	}
}

func TestPolylineNoop(t *testing.T) {
	sink := &failTarget{limit: 0}

	p := &Polyline{Points: []image.Point{{X: 1, Y: 1}}}
	if err := p.Draw(WithStroke(color.White, 1), sink); err != nil {
		t.Errorf("single point: %v", err)
	}

	p = &Polyline{Points: []image.Point{{X: 0, Y: 0}, {X: 4, Y: 4}}}
	if err := p.Draw(Style{StrokeWidth: 1}, sink); err != nil {
		t.Errorf("missing stroke color: %v", err)
	}
}

func TestPolylineSinkError(t *testing.T) {
	p := &Polyline{Points: []image.Point{{X: 0, Y: 0}, {X: 4, Y: 0}}}
	err := p.Draw(WithStroke(color.White, 1), &failTarget{limit: 2})
	if !errors.Is(err, errBroken) {
		t.Errorf("got %v, want errBroken", err)
	}
}
