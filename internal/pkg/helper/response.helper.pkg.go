package helper

import (
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/logger"
	"net/http"
)

// ParseResponse fills the defaults every response needs before it reaches the
// `send` func: a status code, a message, and a server-side log line for 5xx.
func ParseResponse(r *types.Response) *types.Response {
	if r.Code == 0 {
		r.Code = http.StatusOK
		if r.Error != nil {
			r.Code = http.StatusInternalServerError
		}
	}

	if r.Message == "" {
		r.Message = http.StatusText(r.Code)
	}

	if r.Code >= http.StatusInternalServerError && r.Error != nil {
		logger.Error.Printf("%s: %v", r.Message, r.Error)
	}

	return r
}
