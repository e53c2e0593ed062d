package pixelgrid

import (
	"fmt"
	"image"
	"image/color"

	"github.com/aston-ops/pixelgrid/imop"
	"github.com/disintegration/imaging"
)

// MaxDivisions caps the grid size to the single-letter column label space A-Z.
const MaxDivisions = 26

// Default grid parameters, following the Grid-Augmented Vision research
// recommendation of a 9x9 grid with 0.3 alpha black lines.
const (
	DefaultDivisions = 9
	DefaultAlpha     = 0.3
	DefaultMargin    = 15
	DefaultLineWidth = 1
)

// gridLabelSize is the font size used for the margin labels.
const gridLabelSize = 10

// GridSpec holds the reference grid options.
type GridSpec struct {
	// Divisions is the number of grid partitions per axis (2-26).
	Divisions int
	// Alpha is the grid line opacity in the range (0.0, 1.0].
	Alpha float64
	// Margin is the white border width in pixels reserved for the labels.
	Margin int
	// LineWidth is the grid line thickness in pixels.
	LineWidth int
}

// NewGridSpec returns a GridSpec initialized with the default parameters.
func NewGridSpec() *GridSpec {
	return &GridSpec{
		Divisions: DefaultDivisions,
		Alpha:     DefaultAlpha,
		Margin:    DefaultMargin,
		LineWidth: DefaultLineWidth,
	}
}

// validate checks the grid options against their documented ranges.
func (g *GridSpec) validate() error {
	if g.Divisions < 2 || g.Divisions > MaxDivisions {
		return fmt.Errorf("%w: grid divisions must be between 2 and %d, got %d",
			ErrInvalidRequest, MaxDivisions, g.Divisions)
	}
	if g.Alpha <= 0 || g.Alpha > 1 {
		return fmt.Errorf("%w: grid line alpha must be in the (0.0, 1.0] range, got %v",
			ErrInvalidRequest, g.Alpha)
	}
	if g.Margin < 0 {
		return fmt.Errorf("%w: grid margin cannot be negative, got %d",
			ErrInvalidRequest, g.Margin)
	}
	return nil
}

// CellBoundaries computes the divisions+1 cell boundary offsets along an axis
// of the given extent. The sequence is non-decreasing, starts at 0 and ends at
// extent. Cells may differ by at most one pixel when the extent is not evenly
// divisible.
func CellBoundaries(extent, divisions int) []int {
	offsets := make([]int, divisions+1)
	for i := 0; i <= divisions; i++ {
		offsets[i] = extent * i / divisions
	}
	return offsets
}

// CellCenter returns the integer approximation of the center of the cell
// starting at boundary. For odd cell sizes the result is biased towards the
// lower edge.
func CellCenter(boundary, extent, divisions int) int {
	return boundary + extent/divisions/2
}

// Overlay renders the reference grid over the source image: the source is
// pasted onto a white-bordered canvas, semi-transparent lines are composited
// at the cell boundaries and chess-style labels (columns A-Z, rows 1-N) are
// drawn on all four margins.
func (g *GridSpec) Overlay(img image.Image) (*image.NRGBA, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	var (
		origW = img.Bounds().Dx()
		origH = img.Bounds().Dy()
		newW  = origW + 2*g.Margin
		newH  = origH + 2*g.Margin
	)

	canvas := imaging.New(newW, newH, color.White)
	canvas = imaging.Paste(canvas, img, image.Pt(g.Margin, g.Margin))

	// The lines are drawn onto a fully transparent layer and alpha-composited
	// onto the canvas, so the source image stays visible beneath them.
	overlay := image.NewNRGBA(canvas.Bounds())
	lineColor := color.NRGBA{A: uint8(g.Alpha * 255)}

	cols := CellBoundaries(origW, g.Divisions)
	rows := CellBoundaries(origH, g.Divisions)

	for _, x := range cols {
		drawVLine(overlay, g.Margin+x, g.LineWidth, lineColor)
	}
	for _, y := range rows {
		drawHLine(overlay, g.Margin+y, g.LineWidth, lineColor)
	}

	op := imop.InitOp()
	op.Set(imop.SrcOver)

	bmp := imop.NewBitmap(canvas.Bounds())
	op.Draw(bmp, overlay, canvas)
	canvas = bmp.Img

	if err := g.drawLabels(canvas, cols, rows, origW, origH); err != nil {
		return nil, err
	}
	return canvas, nil
}

// labelColor is a dark gray, readable over the white margins.
var labelColor = color.NRGBA{R: 80, G: 80, B: 80, A: 255}

// drawLabels stamps the column letters on the top and bottom margins and the
// row numbers on the left and right margins, each centered on its cell center
// using the measured text extents.
func (g *GridSpec) drawLabels(canvas *image.NRGBA, cols, rows []int, origW, origH int) error {
	ld, err := newLabelDrawer(gridLabelSize)
	if err != nil {
		return err
	}

	newW := canvas.Bounds().Dx()
	newH := canvas.Bounds().Dy()

	// Column labels A, B, C, ...
	for i := 0; i < g.Divisions; i++ {
		label := string(rune('A' + i))
		centerX := g.Margin + CellCenter(cols[i], origW, g.Divisions)

		w, asc, _ := ld.measure(label)
		ld.draw(canvas, label, centerX-w/2, 2+asc, labelColor)
		ld.draw(canvas, label, centerX-w/2, newH-g.Margin+3+asc, labelColor)
	}

	// Row labels 1, 2, 3, ...
	for i := 0; i < g.Divisions; i++ {
		label := fmt.Sprintf("%d", i+1)
		centerY := g.Margin + CellCenter(rows[i], origH, g.Divisions)

		_, asc, desc := ld.measure(label)
		baseline := centerY - (asc+desc)/2 + asc
		ld.draw(canvas, label, 4, baseline, labelColor)
		ld.draw(canvas, label, newW-g.Margin+4, baseline, labelColor)
	}
	return nil
}

// drawVLine fills a vertical line of the given width spanning the full image
// height.
func drawVLine(img *image.NRGBA, x, width int, c color.NRGBA) {
	b := img.Bounds()
	for w := 0; w < width; w++ {
		px := x + w
		if px < b.Min.X || px >= b.Max.X {
			continue
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.SetNRGBA(px, y, c)
		}
	}
}

// drawHLine fills a horizontal line of the given width spanning the full
// image width.
func drawHLine(img *image.NRGBA, y, width int, c color.NRGBA) {
	b := img.Bounds()
	for w := 0; w < width; w++ {
		py := y + w
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, py, c)
		}
	}
}
