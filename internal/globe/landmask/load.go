package landmask

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration

	"github.com/Faultbox/dotglobe/internal/logger"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("mask image has no pixels")

// Decode reads a mask image in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mask: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	logger.Debug("mask decoded",
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return img, nil
}

// Load opens and decodes the mask image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mask %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadFile decodes and samples the mask at path.
func LoadFile(path string, s Sampler) (*Mask, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return s.SampleImage(img), nil
}

// LoadAsync decodes and samples the mask on its own goroutine. The returned
// channel yields the mask once and is then closed. When the image cannot be
// read the failure is logged and the channel is closed without a value; there
// is no retry and no timeout.
func LoadAsync(path string, s Sampler) <-chan *Mask {
	ch := make(chan *Mask, 1)

	go func() {
		defer close(ch)

		start := time.Now()
		m, err := LoadFile(path, s)
		if err != nil {
			logger.Warn("land mask unavailable, globe will have no dots",
				zap.String("path", path),
				zap.Error(err),
			)
			return
		}

		logger.Info("land mask ready",
			zap.String("path", path),
			zap.Int("land", m.LandCount()),
			zap.Duration("took", time.Since(start)),
		)
		ch <- m
	}()

	return ch
}
