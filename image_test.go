package pixelgrid

import (
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"testing"
)

// encodeFixture produces a base64 payload for a small half-transparent image.
func encodeFixture(t *testing.T, w, h int, alpha uint8) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: alpha})
		}
	}

	data, err := EncodeBase64(img, "png", 85)
	if err != nil {
		t.Fatalf("Failed to encode the fixture image: %v", err)
	}
	return data
}

func TestImage_Base64RoundTrip(t *testing.T) {
	data := encodeFixture(t, 12, 8, 255)

	img, err := DecodeBase64(data)
	if err != nil {
		t.Fatalf("DecodeBase64 failed: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("Decoded image expected to be 12x8. Got %dx%d",
			img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestImage_MalformedBase64(t *testing.T) {
	_, err := DecodeBase64("not-valid-base64!!!")

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Expected a DecodeError. Got %v", err)
	}
	if derr.Index != -1 {
		t.Errorf("Single-image decode errors expected to carry index -1. Got %d", derr.Index)
	}
}

func TestImage_UnsupportedImageBytes(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("these are not image bytes"))

	var derr *DecodeError
	if _, err := DecodeBase64(payload); !errors.As(err, &derr) {
		t.Fatalf("Expected a DecodeError. Got %v", err)
	}
}

func TestImage_BatchDecodeIndex(t *testing.T) {
	valid := encodeFixture(t, 4, 4, 255)

	_, err := DecodeBase64All([]string{valid, "broken payload"})

	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Expected a DecodeError. Got %v", err)
	}
	if derr.Index != 1 {
		t.Errorf("Batch decode error expected to report index 1. Got %d", derr.Index)
	}
}

func TestImage_JPEGFlattensAlpha(t *testing.T) {
	data := encodeFixture(t, 10, 10, 128)

	img, err := DecodeBase64(data)
	if err != nil {
		t.Fatalf("DecodeBase64 failed: %v", err)
	}

	out, err := EncodeBase64(img, "jpeg", 85)
	if err != nil {
		t.Fatalf("EncodeBase64 failed: %v", err)
	}

	// JPEG carries no alpha channel, so the decoded output must be opaque.
	decoded, err := DecodeBase64(out)
	if err != nil {
		t.Fatalf("Failed to decode the JPEG output: %v", err)
	}
	if hasTransparency(decoded) {
		t.Errorf("JPEG output expected to be fully opaque")
	}
}

func TestImage_UnsupportedOutputFormat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))

	if _, err := EncodeBase64(img, "webp", 85); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for webp. Got %v", err)
	}
}

func TestImage_Flatten(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 10, B: 10, A: 255})

	flat := flatten(img)
	if hasTransparency(flat) {
		t.Errorf("Flattened image expected to be fully opaque")
	}

	// A fully transparent pixel flattens to the white backdrop.
	px := flat.NRGBAAt(0, 0)
	if px.R != 255 || px.G != 255 || px.B != 255 {
		t.Errorf("Transparent pixel expected to flatten to white. Got %v", px)
	}
}
