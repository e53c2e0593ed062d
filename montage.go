package pixelgrid

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/aston-ops/pixelgrid/utils"
	"github.com/disintegration/imaging"
)

// Label band height in pixels, reserved per row only when labels are present.
const labelBandHeight = 24

// montageLabelSize is the font size used for the per-cell labels.
const montageLabelSize = 14

// Label placement relative to the image cell.
const (
	LabelTop    = "top"
	LabelBottom = "bottom"
)

// DefaultSpacing is the default gap between montage cells in pixels.
const DefaultSpacing = 10

// MontageSpec holds the montage composition options.
type MontageSpec struct {
	// Columns fixes the grid column count. When zero the layout biases
	// towards a square-ish grid with ceil(sqrt(n)) columns.
	Columns int
	// Spacing is the gap between cells and around the canvas edge, in pixels.
	Spacing int
	// Background fills the canvas behind the cells.
	Background color.NRGBA
	// Labels holds optional per-image captions, bound by positional index.
	// A list shorter than the image set silently leaves the tail unlabeled.
	Labels []string
	// LabelPosition places the label band above or below each cell.
	LabelPosition string
	// MaxCellWidth, when set and exceeded, downscales every image by one
	// shared ratio so relative sizes stay comparable.
	MaxCellWidth int
}

// NewMontageSpec returns a MontageSpec initialized with the default options:
// auto column count, 10px spacing, white background and bottom labels.
func NewMontageSpec() *MontageSpec {
	return &MontageSpec{
		Spacing:       DefaultSpacing,
		Background:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		LabelPosition: LabelBottom,
	}
}

// Compose arranges the images into a row-major grid and returns the composed
// bitmap together with a "ColsxRows" grid descriptor. At least two images are
// required.
func (m *MontageSpec) Compose(imgs []*image.NRGBA) (*image.NRGBA, string, error) {
	n := len(imgs)
	if n < 2 {
		return nil, "", fmt.Errorf("%w: montage requires at least 2 images, got %d", ErrInvalidRequest, n)
	}
	if m.Spacing < 0 {
		return nil, "", fmt.Errorf("%w: montage spacing cannot be negative, got %d", ErrInvalidRequest, m.Spacing)
	}

	cols := m.Columns
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(n))))
	}
	rows := (n + cols - 1) / cols

	var cellW, cellH int
	for _, img := range imgs {
		cellW = utils.Max(cellW, img.Bounds().Dx())
		cellH = utils.Max(cellH, img.Bounds().Dy())
	}

	// One shared downscale ratio keeps the relative image sizes comparable.
	if m.MaxCellWidth > 0 && cellW > m.MaxCellWidth {
		ratio := float64(m.MaxCellWidth) / float64(cellW)
		scaled := make([]*image.NRGBA, n)
		cellW, cellH = 0, 0
		for i, img := range imgs {
			w := int(float64(img.Bounds().Dx()) * ratio)
			h := int(float64(img.Bounds().Dy()) * ratio)
			scaled[i] = imaging.Resize(img, w, h, imaging.Lanczos)
			cellW = utils.Max(cellW, scaled[i].Bounds().Dx())
			cellH = utils.Max(cellH, scaled[i].Bounds().Dy())
		}
		imgs = scaled
	}

	band := 0
	if len(m.Labels) > 0 {
		band = labelBandHeight
	}

	canvasW := cols*(cellW+m.Spacing) + m.Spacing
	canvasH := rows*(cellH+m.Spacing+band) + m.Spacing
	canvas := imaging.New(canvasW, canvasH, m.Background)

	var ld *labelDrawer
	if band > 0 {
		var err error
		if ld, err = newLabelDrawer(montageLabelSize); err != nil {
			return nil, "", err
		}
	}

	for i, img := range imgs {
		row := i / cols
		col := i % cols

		cellX := m.Spacing + col*(cellW+m.Spacing)
		cellY := m.Spacing + row*(cellH+m.Spacing+band)

		imgY := cellY
		if band > 0 && m.LabelPosition == LabelTop {
			imgY += band
		}

		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		x := cellX + (cellW-w)/2
		y := imgY + (cellH-h)/2

		rect := image.Rect(x, y, x+w, y+h)
		if hasTransparency(img) {
			draw.Draw(canvas, rect, img, img.Bounds().Min, draw.Over)
		} else {
			draw.Draw(canvas, rect, img, img.Bounds().Min, draw.Src)
		}

		// Labels beyond the image count are ignored, shorter lists leave the
		// remaining cells unlabeled.
		if band > 0 && i < len(m.Labels) && m.Labels[i] != "" {
			bandY := cellY + cellH
			if m.LabelPosition == LabelTop {
				bandY = cellY
			}
			m.drawCellLabel(canvas, ld, m.Labels[i], cellX, bandY, cellW)
		}
	}

	return canvas, fmt.Sprintf("%dx%d", cols, rows), nil
}

// drawCellLabel centers a caption horizontally within its cell and vertically
// within the label band using the measured text extents.
func (m *MontageSpec) drawCellLabel(canvas *image.NRGBA, ld *labelDrawer, label string, cellX, bandY, cellW int) {
	w, asc, desc := ld.measure(label)
	x := cellX + (cellW-w)/2
	baseline := bandY + (labelBandHeight-(asc+desc))/2 + asc
	ld.draw(canvas, label, x, baseline, color.NRGBA{A: 255})
}
