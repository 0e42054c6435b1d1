package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"synergysphere/internal/pkg/jwt"
	"synergysphere/pkg/constants"
	"synergysphere/pkg/responses"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			responses.ErrorWithCode(c, 401, "Missing Authorization header")
			c.Abort()
			return
		}

		// 检查Bearer前缀
		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			responses.ErrorWithCode(c, 401, "Invalid Authorization header format")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwtMgr.ValidateToken(token)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		// 将用户信息存入context
		c.Set(constants.ContextUserKey, claims)
		c.Set(constants.ContextUserIDKey, claims.ID)

		c.Next()
	}
}

// CurrentUserID 读取认证中间件写入的用户ID
func CurrentUserID(c *gin.Context) string {
	return c.GetString(constants.ContextUserIDKey)
}
