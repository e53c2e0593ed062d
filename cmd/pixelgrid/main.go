package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aston-ops/pixelgrid/api"
	"github.com/aston-ops/pixelgrid/utils"
	"github.com/gin-gonic/gin"
)

const HelpBanner = `
┌─┐┬─┐ ┌┬┐
├─┘┴└─┘└┴┘

Pixel-level image transform service: grid overlay, resize, montage.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	addr = flag.String("addr", ":8080", "HTTP listen address")
	mode = flag.String("mode", gin.ReleaseMode, "Server mode (debug, release, test)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	switch *mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(*mode)
	default:
		log.Fatalf(utils.DecorateText(fmt.Sprintf("%q is not a supported server mode", *mode), utils.ErrorMessage))
	}

	api.Version = version()

	log.Printf("%s %s",
		utils.DecorateText("⚡ PIXELGRID", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("is listening on %s...", *addr), utils.DefaultMessage),
	)

	router := api.NewRouter()
	if err := router.Run(*addr); err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to start the HTTP server: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

// version reports the build version injected through the linker, falling back
// to the api package default.
func version() string {
	if Version != "" {
		return Version
	}
	return api.Version
}
