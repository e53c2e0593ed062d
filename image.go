package pixelgrid

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
)

// DecodeBase64 decodes a base64-encoded image payload into an NRGBA bitmap
// with the min-point at (0, 0).
func DecodeBase64(data string) (*image.NRGBA, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &DecodeError{Index: -1, Err: err}
	}

	return toNRGBA(img), nil
}

// DecodeBase64All decodes a batch of base64-encoded images. The first payload
// which cannot be decoded aborts the whole batch with a DecodeError carrying
// its 0-based index.
func DecodeBase64All(data []string) ([]*image.NRGBA, error) {
	imgs := make([]*image.NRGBA, 0, len(data))
	for i, payload := range data {
		img, err := DecodeBase64(payload)
		if err != nil {
			var derr *DecodeError
			if errors.As(err, &derr) {
				return nil, &DecodeError{Index: i, Err: derr.Err}
			}
			return nil, &DecodeError{Index: i, Err: err}
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

// EncodeBase64 encodes an image into the requested output format and returns
// the result as a base64 string. JPEG has no alpha channel, so the image is
// flattened over an opaque white background before encoding.
func EncodeBase64(img image.Image, format string, quality int) (string, error) {
	var buf bytes.Buffer

	switch strings.ToLower(format) {
	case "png":
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return "", fmt.Errorf("could not encode the output image: %w", err)
		}
	case "jpg", "jpeg":
		flat := flatten(toNRGBA(img))
		if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return "", fmt.Errorf("could not encode the output image: %w", err)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// toNRGBA converts any image type to *image.NRGBA with the min-point at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		b := nrgba.Bounds()
		if b.Min.X == 0 && b.Min.Y == 0 {
			return nrgba
		}
	}
	return imaging.Clone(img)
}

// flatten composites an image over an opaque white backdrop, discarding the
// alpha channel.
func flatten(img *image.NRGBA) *image.NRGBA {
	if !hasTransparency(img) {
		return img
	}
	flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)
	return flat
}

// hasTransparency reports whether at least one pixel carries an alpha value
// below fully opaque.
func hasTransparency(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			return true
		}
	}
	return false
}
