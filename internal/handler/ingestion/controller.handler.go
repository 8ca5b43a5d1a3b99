package ingestion

import (
	"context"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/helper"
	"go-storefront/internal/pkg/middleware"
	ingestionService "go-storefront/internal/service/ingestion"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx              context.Context
	ingestionService ingestionService.IService
	authRequired     bool
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, ingestionService ingestionService.IService, authRequired bool) IHandler {
	return &Handler{
		ctx:              ctx,
		ingestionService: ingestionService,
		authRequired:     authRequired,
	}
}

// UploadImages godoc
// @Summary      Upload product images
// @Description  Validates a batch of images and stores a WebP primary asset and a 400x400 thumbnail for each. The batch is all-or-nothing.
// @Tags         Assets
// @Accept       multipart/form-data
// @Produce      json
// @Param        images  formData  file  true  "Image files (jpeg, png, webp, gif), up to 10"
// @Success      201     {array}   types.UploadResult
// @Failure      400     {object}  types.ResponseAPI{data=[]types.FileReport}
// @Failure      500     {object}  types.ResponseAPI
// @Router       /v1/assets/images [post]
func (h *Handler) UploadImages(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	limits := h.ingestionService.Limits()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limits.MaxRequestBytes())

	mr, err := c.Request.MultipartReader()
	if err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Request must be multipart/form-data",
			Errors:  []string{err.Error()},
		}))
		return
	}

	meta := ingestionService.RequestMeta{RequestID: middleware.RequestID(c)}
	if user, ok := middleware.AuthUser(c); ok {
		meta.UploadedBy = user.ID.String()
	}

	send(h.ingestionService.Ingest(c.Request.Context(), mr, meta))
}
