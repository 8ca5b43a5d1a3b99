package middleware

import (
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/helper"
	"go-storefront/internal/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// ResponseInit installs the `send` func handlers use to render a
// types.Response.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("send", func(r *types.Response) {
			if r == nil {
				r = helper.ParseResponse(&types.Response{Code: http.StatusNoContent})
			}

			if r.Raw {
				c.JSON(r.Code, r.Data)
				return
			}

			body := types.ResponseAPI{
				Success: r.Code < http.StatusBadRequest,
				Message: r.Message,
				Data:    r.Data,
				Errors:  r.Errors,
			}
			if r.Error != nil {
				body.Error = r.Error.Error()
			}
			c.JSON(r.Code, body)
		})
		c.Next()
	}
}

// RequestInit tags every request with an id and logs it once it completes.
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		logger.HTTP.Printf("%s %s %d %s [%s]",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			requestID,
		)
	}
}

// RequestID returns the id assigned by RequestInit.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
