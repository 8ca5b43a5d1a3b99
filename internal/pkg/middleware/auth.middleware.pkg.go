package middleware

import (
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/helper"
	"go-storefront/internal/pkg/jwt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const AuthKey = "auth"

// AuthMiddleware requires a valid bearer token. When required is false the
// token is optional but still verified if present.
func AuthMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		send := c.MustGet("send").(func(r *types.Response))

		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token == "" {
			if !required {
				c.Next()
				return
			}
			send(helper.ParseResponse(&types.Response{Code: http.StatusUnauthorized, Message: "token not found"}))
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			send(helper.ParseResponse(&types.Response{Code: http.StatusUnauthorized, Message: "invalid token", Error: err}))
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set(AuthKey, *claims)
		c.Next()
	}
}

// AuthUser returns the authenticated user, if any.
func AuthUser(c *gin.Context) (types.UserWithAuth, bool) {
	v, ok := c.Get(AuthKey)
	if !ok {
		return types.UserWithAuth{}, false
	}
	user, ok := v.(types.UserWithAuth)
	return user, ok
}
