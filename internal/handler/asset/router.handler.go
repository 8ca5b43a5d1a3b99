package asset

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	assets := e.Group("/v1/assets")

	assets.GET("/url", h.GetURL)
}
