// Package redis 定义缓存服务接口
// Service 层依赖此接口而非具体 Redis 实现
package redis

import (
	"context"
	"time"
)

// CacheService 缓存服务接口
// 模拟认证接口用它保存验证码、发送频率限制和 Refresh Token ID
type CacheService interface {
	// Set 设置键值对并指定过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// SetNX 键不存在时才写入，返回是否写入成功
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	// Get 获取键对应的值（键不存在返回空字符串和 nil）
	Get(ctx context.Context, key string) (string, error)
	// Incr 计数加一并返回新值，键首次创建时设置过期时间
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	// Delete 删除键（如果存在）
	Delete(ctx context.Context, key string) error
}
