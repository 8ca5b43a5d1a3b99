package ingestion

import (
	"fmt"
	"go-storefront/internal/common/enum"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/imagecodec"
)

// InspectImage decodes the header of the file at path. Metadata comes from
// the bytes only.
func InspectImage(path string) (types.DecodedImageMetadata, error) {
	return imagecodec.InspectFile(path)
}

// EvaluateContent applies the content rules in order: dimensions, decoded
// format, declared type agreement, then JPEG alpha plausibility.
func EvaluateContent(meta types.DecodedImageMetadata, declared enum.MediaTypeEnum, limits Limits) types.ValidationOutcome {
	if meta.WidthPx > limits.MaxDimensionPx || meta.HeightPx > limits.MaxDimensionPx {
		return types.Rejected(enum.DIMENSION_EXCEEDED,
			fmt.Sprintf("%dx%d exceeds %dx%d", meta.WidthPx, meta.HeightPx, limits.MaxDimensionPx, limits.MaxDimensionPx))
	}

	if !meta.TrueFormat.IsAllowed() {
		return types.Rejected(enum.DISALLOWED_DECODED_FORMAT,
			fmt.Sprintf("decoded format %s is not allowed", meta.TrueFormat))
	}

	if expected := declared.ImageFormat(); expected != meta.TrueFormat {
		return types.Rejected(enum.DECLARED_TYPE_MISMATCH,
			fmt.Sprintf("declared %s but content is %s", declared, meta.TrueFormat))
	}

	if meta.TrueFormat == enum.FORMAT_JPEG && meta.HasAlphaChannel {
		return types.Rejected(enum.ALPHA_IN_JPEG_ANOMALY, "jpeg reports an alpha channel")
	}

	return types.Accepted()
}

// validateContent runs InspectImage and EvaluateContent for f and keeps the
// decoded metadata on the file.
func (s *Service) validateContent(f *types.UploadedFile) types.ValidationOutcome {
	meta, err := InspectImage(f.TemporaryPath)
	if err != nil {
		return types.Rejected(enum.FORMAT_NOT_DECODABLE, err.Error())
	}
	f.Metadata = &meta
	return EvaluateContent(meta, enum.ParseMediaType(f.DeclaredMediaType), s.limits)
}
