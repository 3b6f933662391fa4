// Package https_server 创建模拟认证接口的 Gin 引擎并配置中间件与路由
package https_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hellobike_login/internal/handler"
	"hellobike_login/internal/infrastructure/logger"
	"hellobike_login/internal/router"
)

// Init 创建 Gin 引擎
// 不使用 gin.Default()，日志与 panic 恢复改用 zap 版本的中间件
func Init(handlers *handler.Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	router.NewRouter(handlers).RegisterRoutes(engine)
	return engine
}
