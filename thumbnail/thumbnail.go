// Package thumbnail produces fixed-size, letterboxed JPEG thumbnails.
//
// A source image is scaled down to fit the target box while keeping its
// aspect ratio, then centered on a white canvas of exactly the target size.
// Sources smaller than the box are never enlarged.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/thumbgallery/model"
)

// DefaultQuality is the JPEG quality used for thumbnails unless configured otherwise.
const DefaultQuality = 100

var paddingColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

var supportedFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
}

// Service describes thumbnail generator interface.
type Service interface {
	Generate(sourcePath, targetPath string, target model.Dimensions, quality int) error
}

type impl struct{}

// New returns thumbnail generator implementation.
func New() Service {
	return &impl{}
}

func (s *impl) Generate(sourcePath, targetPath string, target model.Dimensions, quality int) error {
	return Generate(sourcePath, targetPath, target, quality)
}

// Generate decodes sourcePath, letterboxes it into target and saves it as
// JPEG with the given quality at targetPath. The file at targetPath is
// replaced atomically, a failed call leaves no partial file behind.
func Generate(sourcePath, targetPath string, target model.Dimensions, quality int) error {
	if target.Width <= 0 || target.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", model.ErrInvalidTarget, target.Width, target.Height)
	}
	if quality < 0 || quality > 100 {
		return fmt.Errorf("%w: quality %d is not in range [0-100]", model.ErrInvalidTarget, quality)
	}

	src, err := decode(sourcePath)
	if err != nil {
		return err
	}

	return save(Compose(src, target), targetPath, quality)
}

// Compose returns a new image of exactly target size holding src scaled by
// ResolveScaledSize and centered on white padding. src is left untouched.
func Compose(src image.Image, target model.Dimensions) *image.NRGBA {
	b := src.Bounds()
	scaled := ResolveScaledSize(model.Dimensions{Width: b.Dx(), Height: b.Dy()}, target)

	resized := imaging.Resize(src, scaled.Width, scaled.Height, imaging.Linear)
	canvas := imaging.New(target.Width, target.Height, paddingColor)

	return imaging.Paste(canvas, resized, offset(scaled, target))
}

// ResolveScaledSize returns the largest size with the aspect ratio of source
// that fits into target. A source that already fits is returned as is.
//
// The ratios tw/sw and th/sh are applied in integer arithmetic, so
// ceil(tw/sw*sh) is exact and never overshoots the target box.
func ResolveScaledSize(source, target model.Dimensions) model.Dimensions {
	if source.Width <= target.Width && source.Height <= target.Height {
		return source
	}

	sw, sh := int64(source.Width), int64(source.Height)
	tw, th := int64(target.Width), int64(target.Height)

	// xRatio*sh < th
	if tw*sh < th*sw {
		return model.Dimensions{Width: target.Width, Height: int(ceilDiv(tw*sh, sw))}
	}
	return model.Dimensions{Width: int(ceilDiv(th*sw, sh)), Height: target.Height}
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

func offset(scaled, target model.Dimensions) image.Point {
	return image.Pt((target.Width-scaled.Width)/2, (target.Height-scaled.Height)/2)
}

func decode(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", model.ErrUnsupportedOrInvalidImage, path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrUnsupportedOrInvalidImage, path, err)
	}
	if !supportedFormats[format] {
		return nil, fmt.Errorf("%w: %s has format %s", model.ErrUnsupportedOrInvalidImage, path, format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s is empty", model.ErrUnsupportedOrInvalidImage, path)
	}

	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", model.ErrUnsupportedOrInvalidImage, path, err)
	}

	return img, nil
}

func save(img image.Image, path string, quality int) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrEncodeFailure, path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	err = imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(quality))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", model.ErrEncodeFailure, path, err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrEncodeFailure, path, err)
	}

	return nil
}
