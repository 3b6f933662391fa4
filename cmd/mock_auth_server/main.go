package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hellobike_login/internal/config"
	myredis "hellobike_login/internal/dao/redis"
	"hellobike_login/internal/handler"
	"hellobike_login/internal/https_server"
	"hellobike_login/internal/infrastructure/logger"
	"hellobike_login/internal/service"
	"hellobike_login/pkg/util/jwt"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.Mode, logger.WithConsole(os.Stderr)); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()
	zap.L().Info("日志初始化成功")

	if err := config.Validate(&conf.MockServerConfig); err != nil {
		zap.L().Fatal("监听配置错误", zap.Error(err))
	}

	// 3. 初始化缓存（未启用 Redis 时使用进程内缓存）
	cache, closeCache, err := myredis.NewCacheService(context.Background(), conf.RedisConfig)
	if err != nil {
		zap.L().Fatal("缓存初始化失败", zap.Error(err))
	}
	defer func() { _ = closeCache() }()
	zap.L().Info("缓存初始化成功", zap.Bool("redis", conf.RedisConfig.Enabled))

	// 4. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 5. 参数校验错误翻译
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("初始化翻译器失败", zap.Error(err))
	}

	// 6. Service → Handler → Gin 引擎
	engine := https_server.Init(handler.NewHandlers(service.NewServices(cache)))

	addr := fmt.Sprintf("%s:%d", conf.MockServerConfig.Host, conf.MockServerConfig.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zap.L().Info("模拟认证接口已启动", zap.String("addr", "http://"+addr+"/auth"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("服务器关闭异常", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
