// Package preview renders the installed wallpaper as a small image for the
// main window. The canonical wallpaper file is only read here, never
// rewritten.
package preview

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultWidth      = 480
	defaultBlurRadius = 8.0
)

// Renderer builds previews with the aspect ratio of the primary display
type Renderer struct {
	logger     *zap.Logger
	res        *domain.ScreenResolution
	width      int
	blurRadius float64
}

// NewRenderer creates a renderer for the given display geometry
func NewRenderer(logger *zap.Logger, res *domain.ScreenResolution) *Renderer {
	return &Renderer{
		logger:     logger,
		res:        res,
		width:      defaultWidth,
		blurRadius: defaultBlurRadius,
	}
}

// Size returns the preview dimensions: a fixed width and the display's
// aspect ratio
func (r *Renderer) Size() (int, int) {
	if r.res == nil || r.res.Width <= 0 || r.res.Height <= 0 {
		return r.width, r.width * 9 / 16
	}
	h := r.width * r.res.Height / r.res.Width
	if h < 1 {
		h = 1
	}
	return r.width, h
}

// Render decodes the image at path and returns the whole picture letterboxed
// over a blurred fill of itself
func (r *Renderer) Render(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	w, h := r.Size()
	r.logger.Debug("Rendering preview",
		zap.String("path", path),
		zap.Int("w", w),
		zap.Int("h", h))

	background := imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	background = imaging.Blur(background, r.blurRadius)

	fitted := imaging.Fit(img, w, h, imaging.Lanczos)
	return imaging.PasteCenter(background, fitted), nil
}
