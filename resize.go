package pixelgrid

import (
	"fmt"
	"image"

	"github.com/aston-ops/pixelgrid/utils"
	"github.com/disintegration/imaging"
)

// ResizeSpec holds the target dimension options of a resize operation.
// A zero value means the option is unset. MaxDimension takes precedence over
// Width and Height; an exact Width/Height pair takes precedence over a single
// dimension.
type ResizeSpec struct {
	// Width is the target width in pixels. When set alone the height is
	// derived, preserving the aspect ratio.
	Width int
	// Height is the target height in pixels. When set alone the width is
	// derived, preserving the aspect ratio.
	Height int
	// MaxDimension bounds both axes, preserving the aspect ratio.
	MaxDimension int
}

// TargetSize derives the output dimensions for a source of the given size.
// At least one option must be set, otherwise it fails with ErrInvalidRequest.
func (r *ResizeSpec) TargetSize(w, h int) (int, int, error) {
	switch {
	case r.MaxDimension > 0:
		scale := utils.Min(float64(r.MaxDimension)/float64(w), float64(r.MaxDimension)/float64(h))
		return int(float64(w) * scale), int(float64(h) * scale), nil
	case r.Width > 0 && r.Height > 0:
		// Exact dimensions, the aspect ratio is the caller's responsibility.
		return r.Width, r.Height, nil
	case r.Width > 0:
		return r.Width, int(float64(h) * float64(r.Width) / float64(w)), nil
	case r.Height > 0:
		return int(float64(w) * float64(r.Height) / float64(h)), r.Height, nil
	}
	return 0, 0, fmt.Errorf("%w: must provide width, height, or max_dimension", ErrInvalidRequest)
}

// Scale resizes the source image to the dimensions derived by TargetSize
// using Lanczos resampling for both down- and upscaling.
func (r *ResizeSpec) Scale(img image.Image) (*image.NRGBA, error) {
	w, h, err := r.TargetSize(img.Bounds().Dx(), img.Bounds().Dy())
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, w, h, imaging.Lanczos), nil
}
