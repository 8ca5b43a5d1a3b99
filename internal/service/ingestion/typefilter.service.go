package ingestion

import (
	"fmt"
	"go-storefront/internal/common/enum"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/helper"
	"strings"
)

// FilterType checks the declared media type against the allow-list and the
// filename extension against that type. It never touches the file.
func FilterType(f types.UploadedFile) types.ValidationOutcome {
	mediaType := enum.ParseMediaType(f.DeclaredMediaType)
	if !mediaType.IsValid() {
		return types.Rejected(enum.UNSUPPORTED_MEDIA_TYPE,
			fmt.Sprintf("%q is not one of image/jpeg, image/png, image/webp, image/gif", f.DeclaredMediaType))
	}

	ext := helper.FileExtension(f.OriginalName)
	if !mediaType.AllowsExtension(ext) {
		return types.Rejected(enum.EXTENSION_MISMATCH,
			fmt.Sprintf("extension %q does not match %s (expected %s)", ext, mediaType, strings.Join(mediaType.Extensions(), ", ")))
	}

	return types.Accepted()
}
