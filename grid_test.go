package pixelgrid

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestGrid_CellBoundaries(t *testing.T) {
	testCases := []struct {
		extent    int
		divisions int
	}{
		{800, 9},
		{600, 9},
		{100, 2},
		{1023, 26},
		{10, 3},
	}

	for _, tc := range testCases {
		offsets := CellBoundaries(tc.extent, tc.divisions)

		if len(offsets) != tc.divisions+1 {
			t.Errorf("Expected %d boundaries for extent %d. Got %d", tc.divisions+1, tc.extent, len(offsets))
		}
		if offsets[0] != 0 {
			t.Errorf("First boundary expected to be 0. Got %d", offsets[0])
		}
		if offsets[len(offsets)-1] != tc.extent {
			t.Errorf("Last boundary expected to be %d. Got %d", tc.extent, offsets[len(offsets)-1])
		}
		for i := 1; i < len(offsets); i++ {
			if offsets[i] < offsets[i-1] {
				t.Errorf("Boundaries expected to be non-decreasing. Got %v", offsets)
			}
		}
	}
}

func TestGrid_CellBoundariesSkew(t *testing.T) {
	// When the extent is not evenly divisible the cells may differ in size,
	// but never by more than one pixel.
	offsets := CellBoundaries(10, 3)

	min, max := 10, 0
	for i := 1; i < len(offsets); i++ {
		size := offsets[i] - offsets[i-1]
		if size < min {
			min = size
		}
		if size > max {
			max = size
		}
	}
	if max-min > 1 {
		t.Errorf("Cell sizes expected to differ by at most 1 pixel. Got min %d, max %d", min, max)
	}
}

func TestGrid_CellCenter(t *testing.T) {
	// 90/9 = 10px cells, the center of the first cell sits at offset 5.
	if c := CellCenter(0, 90, 9); c != 5 {
		t.Errorf("Cell center expected to be 5. Got %d", c)
	}
	// Odd cell sizes bias towards the lower edge.
	if c := CellCenter(0, 9, 2); c != 2 {
		t.Errorf("Cell center expected to be 2. Got %d", c)
	}
}

func TestGrid_OverlayDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 90, 60))

	spec := NewGridSpec()
	out, err := spec.Overlay(img)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	wantW := 90 + 2*spec.Margin
	wantH := 60 + 2*spec.Margin
	if out.Bounds().Dx() != wantW || out.Bounds().Dy() != wantH {
		t.Errorf("Canvas expected to be %dx%d. Got %dx%d",
			wantW, wantH, out.Bounds().Dx(), out.Bounds().Dy())
	}

	// Re-running with identical inputs keeps the geometry bit-identical.
	out2, err := spec.Overlay(img)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}
	if !out.Bounds().Eq(out2.Bounds()) {
		t.Errorf("Canvas bounds expected to be stable across runs. Got %v and %v",
			out.Bounds(), out2.Bounds())
	}
}

func TestGrid_OverlayLineCompositing(t *testing.T) {
	// A fully white source keeps the canvas white except where grid lines
	// are composited: a 0.3 alpha black line over white yields a light gray.
	img := image.NewNRGBA(image.Rect(0, 0, 90, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 90; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	spec := NewGridSpec()
	out, err := spec.Overlay(img)
	if err != nil {
		t.Fatalf("Overlay failed: %v", err)
	}

	// The first vertical line sits at x = margin; sample it at mid-height,
	// away from any margin label.
	px := out.NRGBAAt(spec.Margin, spec.Margin+30)
	if px.A != 255 {
		t.Errorf("Composited canvas expected to stay opaque. Got alpha %d", px.A)
	}
	if px.R < 170 || px.R > 190 {
		t.Errorf("Grid line over white expected to be light gray (~179). Got %d", px.R)
	}

	// Off the grid lines the source must remain untouched.
	px = out.NRGBAAt(spec.Margin+5, spec.Margin+3)
	if px.R != 255 || px.G != 255 || px.B != 255 {
		t.Errorf("Canvas beside the lines expected to stay white. Got %v", px)
	}
}

func TestGrid_OverlayValidation(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))

	for _, divisions := range []int{0, 1, 27, 100} {
		spec := NewGridSpec()
		spec.Divisions = divisions

		if _, err := spec.Overlay(img); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("Expected ErrInvalidRequest for %d divisions. Got %v", divisions, err)
		}
	}
}
