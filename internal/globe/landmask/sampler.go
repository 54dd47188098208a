package landmask

import (
	"image"
	"image/draw"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/dotglobe/internal/logger"
)

// DefaultThreshold suits a bright land texture on a dark ocean.
const DefaultThreshold = 100

// Sampler classifies mask pixels as land or ocean.
type Sampler struct {
	// Threshold is exclusive: a pixel is land only if red, green and blue
	// are all strictly greater.
	Threshold uint8

	// Resample scales images that are not GridWidth x GridHeight onto the
	// degree grid before scanning. Without it the raw pixel order is used.
	Resample bool
}

// NewSampler returns a sampler with the default threshold and resampling on.
func NewSampler() Sampler {
	return Sampler{Threshold: DefaultThreshold, Resample: true}
}

// IsLand reports whether a single pixel counts as land.
func (s Sampler) IsLand(r, g, b uint8) bool {
	return r > s.Threshold && g > s.Threshold && b > s.Threshold
}

// Sample walks an RGBA row-major buffer once. The first pixel is
// (lon -180, lat 90); longitude advances one degree per pixel and after +180
// wraps back to -180 on the next latitude down. Pixels past latitude -90 and
// a trailing partial pixel are ignored.
func (s Sampler) Sample(pix []byte) *Mask {
	m := &Mask{}

	lon, lat := MinLon, MaxLat
	for i := 0; i+3 < len(pix) && lat >= MinLat; i += 4 {
		if s.IsLand(pix[i], pix[i+1], pix[i+2]) {
			m.add(lat, lon)
		}

		if lon == MaxLon {
			lon = MinLon
			lat--
		} else {
			lon++
		}
	}

	logger.Debug("land mask sampled",
		zap.Int("pixels", len(pix)/4),
		zap.Int("land", m.LandCount()),
		zap.Int("emptyLatitudes", m.EmptyLatitudes()),
	)
	return m
}

// SampleImage converts img to tightly packed RGBA and samples it.
func (s Sampler) SampleImage(img image.Image) *Mask {
	b := img.Bounds()

	var rgba *image.RGBA
	if s.Resample && (b.Dx() != GridWidth || b.Dy() != GridHeight) {
		rgba = image.NewRGBA(image.Rect(0, 0, GridWidth, GridHeight))
		xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
		logger.Debug("land mask resampled",
			zap.Int("srcWidth", b.Dx()),
			zap.Int("srcHeight", b.Dy()),
		)
	} else {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	return s.Sample(rgba.Pix)
}
