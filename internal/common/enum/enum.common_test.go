package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMediaType(t *testing.T) {
	assert.Equal(t, MEDIA_JPEG, ParseMediaType("image/jpeg"))
	assert.Equal(t, MEDIA_PNG, ParseMediaType("IMAGE/PNG"))
	assert.Equal(t, MEDIA_WEBP, ParseMediaType("image/webp; q=1"))
	assert.Equal(t, MediaTypeEnum("image/svg+xml"), ParseMediaType("image/svg+xml"))
	assert.Equal(t, MediaTypeEnum(""), ParseMediaType(""))
}

func TestMediaTypeExtensions(t *testing.T) {
	assert.True(t, MEDIA_JPEG.AllowsExtension(".jpg"))
	assert.True(t, MEDIA_JPEG.AllowsExtension(".JPEG"))
	assert.False(t, MEDIA_JPEG.AllowsExtension(".png"))
	assert.True(t, MEDIA_GIF.AllowsExtension(".gif"))
	assert.False(t, MediaTypeEnum("image/bmp").AllowsExtension(".bmp"))
	assert.False(t, MediaTypeEnum("image/bmp").IsValid())

	assert.Equal(t, FORMAT_JPEG, MEDIA_JPEG.ImageFormat())
	assert.Equal(t, FORMAT_WEBP, MEDIA_WEBP.ImageFormat())
	assert.Equal(t, ImageFormatEnum(""), MediaTypeEnum("text/plain").ImageFormat())
}

func TestImageFormatAllowed(t *testing.T) {
	for _, f := range []ImageFormatEnum{FORMAT_JPEG, FORMAT_PNG, FORMAT_WEBP, FORMAT_GIF} {
		assert.True(t, f.IsAllowed(), f)
	}
	for _, f := range []ImageFormatEnum{FORMAT_BMP, FORMAT_TIFF, ""} {
		assert.False(t, f.IsAllowed(), f)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, DIMENSION_EXCEEDED.IsValid())
	assert.False(t, RejectionReasonEnum("Nope").IsValid())
	assert.Equal(t, "AlphaInJpegAnomaly", ALPHA_IN_JPEG_ANOMALY.ToString())
	assert.True(t, BATCH_FAILED.IsValid())
	assert.True(t, STORAGE_S3.IsValid())
	assert.False(t, StorageBackendEnum("gcs").IsValid())
	assert.True(t, PRODUCTION.IsValid())
}
