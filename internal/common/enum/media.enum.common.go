package enum

import (
	"mime"
	"strings"
)

/*----------- MediaTypeEnum -----------*/

type MediaTypeEnum string

const (
	MEDIA_JPEG MediaTypeEnum = "image/jpeg"
	MEDIA_PNG  MediaTypeEnum = "image/png"
	MEDIA_WEBP MediaTypeEnum = "image/webp"
	MEDIA_GIF  MediaTypeEnum = "image/gif"
)

var mediaExtensions = map[MediaTypeEnum][]string{
	MEDIA_JPEG: {".jpg", ".jpeg"},
	MEDIA_PNG:  {".png"},
	MEDIA_WEBP: {".webp"},
	MEDIA_GIF:  {".gif"},
}

// ParseMediaType normalises a client supplied Content-Type: parameters are
// dropped and the value is lower-cased.
func ParseMediaType(raw string) MediaTypeEnum {
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(raw, ";", 2)[0])
	}
	return MediaTypeEnum(strings.ToLower(mediaType))
}

func (e MediaTypeEnum) ToString() string {
	return string(e)
}

func (e MediaTypeEnum) IsValid() bool {
	_, ok := mediaExtensions[e]
	return ok
}

// Extensions lists the filename extensions registered for the media type.
func (e MediaTypeEnum) Extensions() []string {
	return mediaExtensions[e]
}

// AllowsExtension reports whether ext (with leading dot) belongs to e.
func (e MediaTypeEnum) AllowsExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range mediaExtensions[e] {
		if allowed == ext {
			return true
		}
	}
	return false
}

// ImageFormat is the decoder name image.DecodeConfig reports for e.
func (e MediaTypeEnum) ImageFormat() ImageFormatEnum {
	switch e {
	case MEDIA_JPEG:
		return FORMAT_JPEG
	case MEDIA_PNG:
		return FORMAT_PNG
	case MEDIA_WEBP:
		return FORMAT_WEBP
	case MEDIA_GIF:
		return FORMAT_GIF
	}
	return ""
}

/*----------- ImageFormatEnum -----------*/

// ImageFormatEnum is the true format found by decoding file bytes.
type ImageFormatEnum string

const (
	FORMAT_JPEG ImageFormatEnum = "jpeg"
	FORMAT_PNG  ImageFormatEnum = "png"
	FORMAT_WEBP ImageFormatEnum = "webp"
	FORMAT_GIF  ImageFormatEnum = "gif"
	FORMAT_BMP  ImageFormatEnum = "bmp"
	FORMAT_TIFF ImageFormatEnum = "tiff"
)

func (e ImageFormatEnum) ToString() string {
	return string(e)
}

// IsAllowed reports whether the decoded format may enter the catalog.
func (e ImageFormatEnum) IsAllowed() bool {
	switch e {
	case FORMAT_JPEG, FORMAT_PNG, FORMAT_WEBP, FORMAT_GIF:
		return true
	}
	return false
}
