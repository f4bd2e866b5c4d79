// Package monitor reports the primary display geometry, used to size the
// wallpaper preview shown in the main window.
package monitor

import (
	"image"

	"github.com/kbinani/screenshot"
	"github.com/orbitalview/wallpaper/internal/domain"
	"go.uber.org/zap"
)

// FallbackResolution is used when no active display can be queried, e.g.
// on a headless session
var FallbackResolution = domain.ScreenResolution{Width: 1920, Height: 1080}

type displayQuery struct {
	count  func() int
	bounds func(index int) image.Rectangle
}

var screenshotQuery = displayQuery{
	count:  screenshot.NumActiveDisplays,
	bounds: screenshot.GetDisplayBounds,
}

// NewScreenResolution detects the primary screen resolution at startup
func NewScreenResolution(logger *zap.Logger) *domain.ScreenResolution {
	return detect(logger, screenshotQuery)
}

func detect(logger *zap.Logger, q displayQuery) *domain.ScreenResolution {
	n := q.count()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to default resolution",
			zap.Int("width", FallbackResolution.Width),
			zap.Int("height", FallbackResolution.Height))
		res := FallbackResolution
		return &res
	}

	// Primary monitor is index 0
	bounds := q.bounds(0)
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		logger.Warn("Primary display reported empty bounds, falling back to default resolution",
			zap.Stringer("bounds", bounds))
		res := FallbackResolution
		return &res
	}

	res := &domain.ScreenResolution{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	logger.Info("Screen resolution detected",
		zap.Int("displays", n),
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return res
}
