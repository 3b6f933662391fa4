package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hellobike_login/pkg/errorx"
	"hellobike_login/pkg/util/jwt"
)

// ContextMobileKey 认证通过后写入 gin.Context 的手机号键名
const ContextMobileKey = "mobile"

// JWTAuth JWT 认证中间件
// 验证登录接口签发的 Access Token，并将手机号存入上下文
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "请先登录")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Token 格式错误，请使用 Bearer Token")
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Token 已过期或无效，请重新登录")
			return
		}

		// Refresh Token 不能用来访问接口
		if claims.Subject != "access_token" {
			abortUnauthorized(c, "请使用 Access Token 访问此接口")
			return
		}

		c.Set(ContextMobileKey, claims.Mobile)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    errorx.CodeUnauthorized,
		"msg":     msg,
		"success": false,
	})
}
