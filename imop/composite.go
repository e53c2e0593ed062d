// Package imop implements the Porter-Duff composition operations used for
// mixing a graphic element with its backdrop. The image/draw core package
// implements only the source-over-destination and source operations on
// premultiplied colors; this package works on straight (non-premultiplied)
// NRGBA bitmaps, which is what the grid overlay renderer produces.
package imop

import (
	"image"
	"image/color"

	"github.com/aston-ops/pixelgrid/utils"
)

// The supported composition operations.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
)

// Bitmap holds the destination of a composition operation.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap initializes a new composition destination of the given size.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new Composite with Copy as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: Copy,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw applies the active composition operation over each pixel of src and
// dst and writes the result into the bitmap. The source and destination are
// expected to share the bitmap bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA) {
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}
	dx, dy := bitmap.Img.Bounds().Dx(), bitmap.Img.Bounds().Dy()

	var rn, gn, bn, an float64

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			s := src.NRGBAAt(x, y)
			b := dst.NRGBAAt(x, y)

			rsn := float64(s.R) / 255
			gsn := float64(s.G) / 255
			bsn := float64(s.B) / 255
			asn := float64(s.A) / 255

			rbn := float64(b.R) / 255
			gbn := float64(b.G) / 255
			bbn := float64(b.B) / 255
			abn := float64(b.A) / 255

			// applying the alpha composition formula on straight colors
			switch op.current {
			case Copy:
				rn, gn, bn, an = rsn, gsn, bsn, asn
			case SrcOver:
				an = asn + abn*(1-asn)
				if an > 0 {
					rn = (rsn*asn + rbn*abn*(1-asn)) / an
					gn = (gsn*asn + gbn*abn*(1-asn)) / an
					bn = (bsn*asn + bbn*abn*(1-asn)) / an
				} else {
					rn, gn, bn = 0, 0, 0
				}
			case DstOver:
				an = abn + asn*(1-abn)
				if an > 0 {
					rn = (rbn*abn + rsn*asn*(1-abn)) / an
					gn = (gbn*abn + gsn*asn*(1-abn)) / an
					bn = (bbn*abn + bsn*asn*(1-abn)) / an
				} else {
					rn, gn, bn = 0, 0, 0
				}
			}

			bitmap.Img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rn*255 + 0.5),
				G: uint8(gn*255 + 0.5),
				B: uint8(bn*255 + 0.5),
				A: uint8(an*255 + 0.5),
			})
		}
	}
}
