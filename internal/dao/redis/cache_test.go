package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"hellobike_login/internal/config"
)

// exerciseCache 两种实现共用的行为检查
func exerciseCache(t *testing.T, cache CacheService, expire func(time.Duration)) {
	t.Helper()
	ctx := context.Background()

	v, err := cache.Get(ctx, "missing")
	if err != nil || v != "" {
		t.Fatalf("Get(missing) = %q, %v", v, err)
	}

	if err := cache.Set(ctx, "auth_code_1", "123456", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := cache.Get(ctx, "auth_code_1"); v != "123456" {
		t.Fatalf("Get = %q", v)
	}

	ok, err := cache.SetNX(ctx, "auth_code_1", "999999", time.Minute)
	if err != nil || ok {
		t.Fatalf("SetNX on existing key = %v, %v", ok, err)
	}
	ok, err = cache.SetNX(ctx, "auth_throttle_1", "1", time.Minute)
	if err != nil || !ok {
		t.Fatalf("SetNX on new key = %v, %v", ok, err)
	}

	if err := cache.Delete(ctx, "auth_code_1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if v, _ := cache.Get(ctx, "auth_code_1"); v != "" {
		t.Fatalf("Get after Delete = %q", v)
	}

	expire(2 * time.Minute)
	if v, _ := cache.Get(ctx, "auth_throttle_1"); v != "" {
		t.Fatalf("expected key to expire, got %q", v)
	}
	ok, _ = cache.SetNX(ctx, "auth_throttle_1", "1", time.Minute)
	if !ok {
		t.Fatal("SetNX should succeed after expiry")
	}

	for want := int64(1); want <= 2; want++ {
		n, err := cache.Incr(ctx, "auth_attempt_1", time.Minute)
		if err != nil || n != want {
			t.Fatalf("Incr = %d, %v; want %d", n, err, want)
		}
	}
	expire(2 * time.Minute)
	if n, _ := cache.Incr(ctx, "auth_attempt_1", time.Minute); n != 1 {
		t.Fatalf("Incr after expiry = %d, want 1", n)
	}
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	now := time.Now()
	cache.now = func() time.Time { return now }

	exerciseCache(t, cache, func(d time.Duration) { now = now.Add(d) })
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	exerciseCache(t, NewRedisCache(client), mr.FastForward)
}

func TestNewCacheServiceDisabled(t *testing.T) {
	cache, closeFn, err := NewCacheService(context.Background(), config.RedisConfig{})
	if err != nil {
		t.Fatalf("NewCacheService: %v", err)
	}
	defer closeFn()
	if _, ok := cache.(*MemoryCache); !ok {
		t.Fatalf("expected MemoryCache, got %T", cache)
	}
}

func TestNewCacheServiceRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())

	cache, closeFn, err := NewCacheService(context.Background(), config.RedisConfig{
		Enabled: true,
		Host:    mr.Host(),
		Port:    port,
	})
	if err != nil {
		t.Fatalf("NewCacheService: %v", err)
	}
	defer closeFn()
	if _, ok := cache.(*RedisCache); !ok {
		t.Fatalf("expected RedisCache, got %T", cache)
	}
}

func TestNewCacheServiceUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	port, _ := strconv.Atoi(mr.Port())
	host := mr.Host()
	mr.Close()

	if _, _, err := NewCacheService(context.Background(), config.RedisConfig{Enabled: true, Host: host, Port: port}); err == nil {
		t.Fatal("expected connection error")
	}
}
