package asset

import (
	"context"
	types "go-storefront/internal/common/type"
	assetService "go-storefront/internal/service/asset"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx          context.Context
	assetService assetService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, assetService assetService.IService) IHandler {
	return &Handler{
		ctx:          ctx,
		assetService: assetService,
	}
}

// GetURL godoc
// @Summary      Resolve an asset URL
// @Description  Returns a fetchable URL for a derivative key returned by the upload endpoint
// @Tags         Assets
// @Produce      json
// @Param        key  query     string  true  "Asset key, e.g. products/<id>.webp"
// @Success      200  {object}  types.ResponseAPI{data=assetService.URLResponse}
// @Failure      400  {object}  types.ResponseAPI
// @Failure      404  {object}  types.ResponseAPI
// @Router       /v1/assets/url [get]
func (h *Handler) GetURL(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	send(h.assetService.ResolveURL(c.Request.Context(), c.Query("key")))
}
