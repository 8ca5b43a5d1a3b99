package ingestion

import (
	"go-storefront/internal/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	assets := e.Group("/v1/assets")

	assets.POST("/images", middleware.AuthMiddleware(h.authRequired), h.UploadImages)
}
