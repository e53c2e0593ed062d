package api

import (
	"fmt"
	"net/http"

	"github.com/aston-ops/pixelgrid"
	"github.com/aston-ops/pixelgrid/utils"
	"github.com/gin-gonic/gin"
)

// defaultJPEGQuality is used whenever the caller does not override it.
const defaultJPEGQuality = 85

// gridOverlayRequest is the request body of POST /image/grid-overlay.
type gridOverlayRequest struct {
	ImageBase64   string  `json:"image_base64" binding:"required"`
	GridSize      int     `json:"grid_size" binding:"omitempty,min=2,max=26"`
	Alpha         float64 `json:"alpha" binding:"omitempty,min=0.1,max=1.0"`
	Margin        int     `json:"margin" binding:"omitempty,min=5,max=50"`
	OutputFormat  string  `json:"output_format" binding:"omitempty,oneof=png jpeg jpg"`
	IncludePrompt bool    `json:"include_prompt"`
}

// gridOverlayResponse is the response body of POST /image/grid-overlay.
type gridOverlayResponse struct {
	ImageBase64    string `json:"image_base64"`
	PromptPrefix   string `json:"prompt_prefix,omitempty"`
	UXReviewPrompt string `json:"ux_review_prompt,omitempty"`
}

// gridOverlay adds a reference grid with chess-style labels to an image,
// optionally returning the prompt strings which explain the grid to a vision
// LLM.
func gridOverlay(c *gin.Context) {
	req := gridOverlayRequest{
		GridSize:     pixelgrid.DefaultDivisions,
		Alpha:        pixelgrid.DefaultAlpha,
		Margin:       pixelgrid.DefaultMargin,
		OutputFormat: "png",
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, err)
		return
	}

	img, err := pixelgrid.DecodeBase64(req.ImageBase64)
	if err != nil {
		abortError(c, err)
		return
	}

	spec := pixelgrid.NewGridSpec()
	spec.Divisions = req.GridSize
	spec.Alpha = req.Alpha
	spec.Margin = req.Margin

	out, err := spec.Overlay(img)
	if err != nil {
		abortError(c, err)
		return
	}

	encoded, err := pixelgrid.EncodeBase64(out, req.OutputFormat, defaultJPEGQuality)
	if err != nil {
		abortError(c, err)
		return
	}

	resp := gridOverlayResponse{ImageBase64: encoded}
	if req.IncludePrompt {
		resp.PromptPrefix = pixelgrid.GridPromptPrefix
		resp.UXReviewPrompt = pixelgrid.UXReviewPrompt(nil)
	}
	c.JSON(http.StatusOK, resp)
}

// resizeRequest is the request body of POST /image/resize. At least one of
// width, height or max_dimension is required.
type resizeRequest struct {
	ImageBase64  string `json:"image_base64" binding:"required"`
	Width        int    `json:"width" binding:"omitempty,min=1,max=4096"`
	Height       int    `json:"height" binding:"omitempty,min=1,max=4096"`
	MaxDimension int    `json:"max_dimension" binding:"omitempty,min=1,max=4096"`
	OutputFormat string `json:"output_format" binding:"omitempty,oneof=png jpeg jpg"`
	Quality      int    `json:"quality" binding:"omitempty,min=1,max=100"`
}

// resizeResponse is the response body of POST /image/resize.
type resizeResponse struct {
	ImageBase64 string `json:"image_base64"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// resizeImage rescales an image to exact dimensions, by a single dimension
// preserving the aspect ratio, or into a max-dimension bounding box.
func resizeImage(c *gin.Context) {
	req := resizeRequest{
		OutputFormat: "png",
		Quality:      defaultJPEGQuality,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, err)
		return
	}

	img, err := pixelgrid.DecodeBase64(req.ImageBase64)
	if err != nil {
		abortError(c, err)
		return
	}

	spec := &pixelgrid.ResizeSpec{
		Width:        req.Width,
		Height:       req.Height,
		MaxDimension: req.MaxDimension,
	}
	out, err := spec.Scale(img)
	if err != nil {
		abortError(c, err)
		return
	}

	encoded, err := pixelgrid.EncodeBase64(out, req.OutputFormat, req.Quality)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, resizeResponse{
		ImageBase64: encoded,
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
	})
}

// montageRequest is the request body of POST /image/montage.
type montageRequest struct {
	Images        []string `json:"images" binding:"required,min=2,max=25"`
	Columns       int      `json:"columns" binding:"omitempty,min=1,max=10"`
	Spacing       *int     `json:"spacing" binding:"omitempty,min=0,max=100"`
	Background    string   `json:"background" binding:"omitempty,hexcolor"`
	Labels        []string `json:"labels"`
	LabelPosition string   `json:"label_position" binding:"omitempty,oneof=top bottom"`
	MaxCellWidth  int      `json:"max_cell_width" binding:"omitempty,min=50,max=2048"`
	OutputFormat  string   `json:"output_format" binding:"omitempty,oneof=png jpeg jpg"`
}

// montageResponse is the response body of POST /image/montage.
type montageResponse struct {
	ImageBase64 string `json:"image_base64"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Grid        string `json:"grid"`
}

// montageImages arranges 2-25 images in a row/column grid with optional
// per-image labels.
func montageImages(c *gin.Context) {
	req := montageRequest{
		Background:    "#FFFFFF",
		LabelPosition: pixelgrid.LabelBottom,
		OutputFormat:  "png",
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, err)
		return
	}

	background, err := utils.ParseHexColor(req.Background)
	if err != nil {
		abortError(c, fmt.Errorf("%w: %v", pixelgrid.ErrInvalidRequest, err))
		return
	}

	imgs, err := pixelgrid.DecodeBase64All(req.Images)
	if err != nil {
		abortError(c, err)
		return
	}

	spec := pixelgrid.NewMontageSpec()
	spec.Columns = req.Columns
	spec.Background = background
	spec.Labels = req.Labels
	spec.LabelPosition = req.LabelPosition
	spec.MaxCellWidth = req.MaxCellWidth
	if req.Spacing != nil {
		spec.Spacing = *req.Spacing
	}

	out, grid, err := spec.Compose(imgs)
	if err != nil {
		abortError(c, err)
		return
	}

	encoded, err := pixelgrid.EncodeBase64(out, req.OutputFormat, defaultJPEGQuality)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, montageResponse{
		ImageBase64: encoded,
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		Grid:        grid,
	})
}

// abortError maps a failed transform onto a client-facing error response.
// Every error raised by a request is caused by its own input, so they all
// surface as 400 with a human-readable message.
func abortError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": fmt.Sprintf("image processing failed: %v", err),
	})
}
