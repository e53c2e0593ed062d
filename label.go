package pixelgrid

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	labelFont     *sfnt.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

// parseLabelFont parses the embedded Go Regular font exactly once.
func parseLabelFont() (*sfnt.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	if labelFontErr != nil {
		return nil, fmt.Errorf("could not parse the label font: %w", labelFontErr)
	}
	return labelFont, nil
}

// labelDrawer measures and draws short text labels with a fixed-size face.
type labelDrawer struct {
	face font.Face
}

// newLabelDrawer builds a drawer around the embedded Go Regular font at the
// given point size.
func newLabelDrawer(size float64) (*labelDrawer, error) {
	f, err := parseLabelFont()
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("could not build the label font face: %w", err)
	}
	return &labelDrawer{face: face}, nil
}

// measure returns the advance width, ascent and descent of the rendered text
// in pixels. Placement relies on these metrics instead of a fixed glyph width
// so the labels stay centered across font changes.
func (ld *labelDrawer) measure(s string) (width, ascent, descent int) {
	adv := font.MeasureString(ld.face, s)
	m := ld.face.Metrics()
	return adv.Ceil(), m.Ascent.Ceil(), m.Descent.Ceil()
}

// draw renders the text onto dst with the baseline origin at (x, y).
func (ld *labelDrawer) draw(dst *image.NRGBA, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: ld.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
