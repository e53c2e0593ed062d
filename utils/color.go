package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor converts a CSS-style hex color string like "#FFFFFF" or
// "#FFF" to an opaque NRGBA color. The leading '#' is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	c := color.NRGBA{A: 0xff}
	var err error

	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B)
		// Expand the short form: "F" means "FF".
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid length %d", len(s))
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %v", s, err)
	}
	return c, nil
}
