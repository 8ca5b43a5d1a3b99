package ingestion

import (
	types "go-storefront/internal/common/type"

	"github.com/samber/lo"
)

// Finalize maps transformed assets to the response records, keeping order.
func Finalize(assets []types.TransformedAsset) []types.UploadResult {
	return lo.Map(assets, func(a types.TransformedAsset, _ int) types.UploadResult {
		return types.UploadResult{
			FinalPath:     a.PrimaryPath,
			Filename:      a.Filename,
			Width:         a.WidthPx,
			Height:        a.HeightPx,
			ThumbnailPath: a.ThumbnailPath,
		}
	})
}
