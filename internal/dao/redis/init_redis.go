package redis

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hellobike_login/internal/config"
	"hellobike_login/pkg/errorx"
)

// NewCacheService 根据配置创建缓存服务
// 未启用 Redis 时返回进程内缓存；启用时先 PING 确认连接可用
func NewCacheService(ctx context.Context, conf config.RedisConfig) (CacheService, func() error, error) {
	if !conf.Enabled {
		zap.L().Warn("Redis 未启用，验证码保存在进程内存中")
		return NewMemoryCache(), func() error { return nil }, nil
	}

	addr := net.JoinHostPort(conf.Host, strconv.Itoa(conf.Port))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.Db,
		PoolSize: 10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errorx.Wrapf(err, errorx.CodeCacheError, "连接 Redis %s 失败", addr)
	}

	zap.L().Info("Redis 连接成功", zap.String("addr", addr), zap.Int("db", conf.Db))
	return NewRedisCache(client), client.Close, nil
}
