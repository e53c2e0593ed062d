/*
Package pixelgrid implements the pixel-level image transforms behind the
pixelgrid HTTP service: reference grid overlays with chess-style labels,
aspect-aware resizing and multi-image montage composition.

All transforms are stateless, per-request operations over in-memory bitmaps.
A typical integration looks like this:

	package main

	import (
		"fmt"

		"github.com/aston-ops/pixelgrid"
	)

	func main() {
		img, err := pixelgrid.DecodeBase64(payload)
		if err != nil {
			fmt.Printf("Error decoding image: %s", err.Error())
			return
		}

		spec := pixelgrid.NewGridSpec()
		out, err := spec.Overlay(img)
		if err != nil {
			fmt.Printf("Error rendering grid: %s", err.Error())
		}
		_ = out
	}

The package also ships a command line interface which starts the HTTP server
exposing the transforms under /image. To check the supported flags type:

	$ pixelgrid --help
*/
package pixelgrid
