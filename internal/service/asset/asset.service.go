package asset

import (
	"context"
	"errors"
	"fmt"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/helper"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// ResolveURL turns a derivative key returned by the upload endpoint into an
// address a browser can fetch. Only keys below the asset prefix resolve.
func (s *Service) ResolveURL(ctx context.Context, key string) *types.Response {
	key = strings.TrimPrefix(path.Clean("/"+strings.TrimSpace(key)), "/")
	if key == "" || (s.prefix != "" && !strings.HasPrefix(key, s.prefix+"/")) {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid asset key",
			Errors:  []string{fmt.Sprintf("key must name an object under %s/", s.prefix)},
		})
	}

	url, err := s.assets.URL(ctx, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return helper.ParseResponse(&types.Response{
				Code:    http.StatusNotFound,
				Message: "Asset not found",
			})
		}
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve asset URL",
			Error:   err,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: URLResponse{Key: key, URL: url},
	})
}
