// Package api exposes the pixelgrid image transforms over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version indicates the current build version.
var Version = "1.0.0"

// NewRouter wires up the service routes. Every transform endpoint is a
// stateless POST handler; no state is shared across requests.
func NewRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/", serviceInfo)
	router.GET("/health", healthCheck)

	img := router.Group("/image")
	{
		img.POST("/grid-overlay", gridOverlay)
		img.POST("/resize", resizeImage)
		img.POST("/montage", montageImages)
	}

	return router
}

// serviceInfo reports the service descriptor and the available endpoints.
func serviceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "pixelgrid",
		"version": Version,
		"status":  "ok",
		"endpoints": gin.H{
			"health": "/health",
			"image": gin.H{
				"grid-overlay": "POST /image/grid-overlay",
				"resize":       "POST /image/resize",
				"montage":      "POST /image/montage",
			},
		},
	})
}

// healthCheck is the liveness probe endpoint.
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
