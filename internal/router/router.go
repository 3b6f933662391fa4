// Package router 注册模拟认证接口的路由
package router

import (
	"github.com/gin-gonic/gin"

	"hellobike_login/internal/handler"
	"hellobike_login/internal/infrastructure/middleware"
)

// Router 路由管理器
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
func (r *Router) RegisterRoutes(engine *gin.Engine) {
	// POST /auth - 所有操作共用一个地址，按请求体中的 action 分发
	engine.POST("/auth", r.handlers.Auth.Dispatch)

	engine.GET("/auth/profile", middleware.JWTAuth(), r.handlers.Auth.Profile)

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(200, "ok")
	})
}
