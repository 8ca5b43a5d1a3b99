// Package imagecodec wraps the decoders, resamplers and the WebP encoder used
// to inspect uploads and render derivatives.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"go-storefront/internal/common/enum"
	types "go-storefront/internal/common/type"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// OutputFormat is the single format derivatives are normalised to.
const (
	OutputFormat      = "webp"
	OutputContentType = "image/webp"
	OutputExtension   = ".webp"
)

// Inspect reads just enough of r to report the true format, the pixel
// dimensions and whether the colour model carries alpha. bmp and tiff are
// decodable on purpose so they surface as a disallowed format instead of an
// undecodable one.
func Inspect(r io.Reader) (types.DecodedImageMetadata, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return types.DecodedImageMetadata{}, err
	}
	return types.DecodedImageMetadata{
		TrueFormat:      enum.ImageFormatEnum(format),
		WidthPx:         cfg.Width,
		HeightPx:        cfg.Height,
		HasAlphaChannel: HasAlpha(cfg.ColorModel),
	}, nil
}

func InspectFile(path string) (types.DecodedImageMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.DecodedImageMetadata{}, err
	}
	defer f.Close()
	return Inspect(f)
}

// HasAlpha reports whether pixels of model may be non-opaque. The stdlib png
// decoder reports opaque truecolor as RGBA/RGBA64, so those models count as
// opaque; files with an alpha channel come back as NRGBA/NRGBA64.
func HasAlpha(model color.Model) bool {
	if palette, ok := model.(color.Palette); ok {
		for _, c := range palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}
	switch model {
	case color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model, color.NYCbCrAModel:
		return true
	}
	return false
}

// Decode fully decodes data, applying the EXIF orientation of JPEG sources.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// Fit scales img down to fit inside a maxPx square keeping its aspect ratio.
// Images already inside the box are returned at their original size.
func Fit(img image.Image, maxPx int) image.Image {
	return imaging.Fit(img, maxPx, maxPx, imaging.Lanczos)
}

// Cover scales and center-crops img to exactly px by px.
func Cover(img image.Image, px int) image.Image {
	return imaging.Fill(img, px, px, imaging.Center, imaging.Lanczos)
}

// EncodeWebP encodes img as lossy WebP at quality (1-100). Output is a pure
// function of the pixels and quality.
func EncodeWebP(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}
