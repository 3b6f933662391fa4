// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找，并允许 .env / 环境变量覆盖
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
	"github.com/joho/godotenv"

	"hellobike_login/pkg/constants"
	"hellobike_login/pkg/errorx"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称，用于日志标识等
	Mode    string `toml:"mode"`    // 运行模式："dev" 时日志同时输出到控制台
}

// AuthAPIConfig 认证接口配置
// 发送验证码与登录使用两个独立的手机号配置项，二者不一致时运行器会给出告警
type AuthAPIConfig struct {
	Endpoint       string `toml:"endpoint" validate:"required,url"`   // 认证接口地址
	SendCodeMobile string `toml:"sendCodeMobile" validate:"required"` // 发送验证码的手机号
	LoginMobile    string `toml:"loginMobile" validate:"required"`    // 登录使用的手机号，留空时与 SendCodeMobile 相同
	TimeoutSeconds int    `toml:"timeoutSeconds" validate:"gte=0"`    // 单次请求超时（秒），0 表示不设置超时
	Code           string `toml:"code"`                               // 预置验证码，非空时跳过交互输入
}

// MockServerConfig 本地模拟认证接口的监听配置
type MockServerConfig struct {
	Host string `toml:"host" validate:"required"`                 // 监听地址
	Port int    `toml:"port" validate:"required,min=1,max=65535"` // 监听端口
}

// RedisConfig Redis 连接配置
// Enabled 为 false 时模拟接口使用进程内缓存
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`     // Redis 服务器地址
	Port     int    `toml:"port"`     // Redis 端口，默认 6379
	Password string `toml:"password"` // Redis 密码，无密码留空
	Db       int    `toml:"db"`       // Redis 数据库编号，默认 0
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// JWTConfig 模拟接口签发 Token 的配置
type JWTConfig struct {
	Secret             string `toml:"secret"`             // JWT 签名密钥
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 有效期（分钟）
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 有效期（小时）
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig       `toml:"mainConfig"`
	AuthAPIConfig    `toml:"authApiConfig"`
	MockServerConfig `toml:"mockServerConfig"`
	RedisConfig      `toml:"redisConfig"`
	LogConfig        `toml:"logConfig"`
	JWTConfig        `toml:"jwtConfig"`
}

// SearchPaths 候选配置文件路径（优先加载本地配置）
var SearchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml", // 从子目录运行时的路径
	"../../configs/config.toml",
}

// config 全局配置单例，延迟加载
var config *Config

// Load 依次尝试 paths 中的配置文件，找到第一个可用的即停止；
// 之后加载 .env 并应用环境变量覆盖，最后补齐默认值。
// 所有路径都不存在时不报错，完全依赖环境变量和默认值。
func Load(paths ...string) (*Config, error) {
	cfg := new(Config)
	for _, path := range paths {
		_, err := toml.DecodeFile(path, cfg)
		if err == nil {
			break
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, errorx.Wrapf(err, errorx.CodeInvalidConfig, "解析配置文件 %s 失败", path)
	}

	// .env 不存在是正常情况；已存在的环境变量不会被覆盖
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	setDefaults(cfg)
	return cfg, nil
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件
func GetConfig() *Config {
	if config == nil {
		cfg, err := Load(SearchPaths...)
		if err != nil {
			// 配置文件格式错误时退回到默认值，由调用方的 Validate 报告缺失项
			cfg = new(Config)
			setDefaults(cfg)
		}
		config = cfg
	}
	return config
}

// applyEnv 使用环境变量覆盖配置文件中的值
func applyEnv(cfg *Config) error {
	if v, ok := lookupEnv("HELLOBIKE_ENDPOINT"); ok {
		cfg.Endpoint = v
	}
	if v, ok := lookupEnv("HELLOBIKE_SEND_MOBILE"); ok {
		cfg.SendCodeMobile = v
	}
	if v, ok := lookupEnv("HELLOBIKE_LOGIN_MOBILE"); ok {
		cfg.LoginMobile = v
	}
	if v, ok := lookupEnv("HELLOBIKE_CODE"); ok {
		cfg.Code = v
	}
	if v, ok := lookupEnv("HELLOBIKE_TIMEOUT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeInvalidConfig, "HELLOBIKE_TIMEOUT 必须是整数秒，实际为 %q", v)
		}
		cfg.TimeoutSeconds = n
	}

	if v, ok := lookupEnv("MOCK_HOST"); ok {
		cfg.MockServerConfig.Host = v
	}
	if v, ok := lookupEnv("MOCK_PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeInvalidConfig, "MOCK_PORT 必须是整数，实际为 %q", v)
		}
		cfg.MockServerConfig.Port = n
	}

	if v, ok := lookupEnv("REDIS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeInvalidConfig, "REDIS_ENABLED 必须是布尔值，实际为 %q", v)
		}
		cfg.RedisConfig.Enabled = enabled
	}
	if v, ok := lookupEnv("REDIS_HOST"); ok {
		cfg.RedisConfig.Host = v
	}
	if v, ok := lookupEnv("REDIS_PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeInvalidConfig, "REDIS_PORT 必须是整数，实际为 %q", v)
		}
		cfg.RedisConfig.Port = n
	}
	if v, ok := lookupEnv("REDIS_PASSWORD"); ok {
		cfg.RedisConfig.Password = v
	}

	if v, ok := lookupEnv("JWT_SECRET"); ok {
		cfg.JWTConfig.Secret = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.LogConfig.Level = v
	}
	return nil
}

// lookupEnv 只把非空值视为覆盖
func lookupEnv(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// setDefaults 为未配置的项设置默认值
func setDefaults(cfg *Config) {
	if cfg.AppName == "" {
		cfg.AppName = "hellobike_login"
	}
	if cfg.Mode == "" {
		cfg.Mode = "release"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = constants.DEFAULT_ENDPOINT
	}
	if cfg.LoginMobile == "" {
		cfg.LoginMobile = cfg.SendCodeMobile
	}
	if cfg.MockServerConfig.Host == "" {
		cfg.MockServerConfig.Host = "127.0.0.1"
	}
	if cfg.MockServerConfig.Port == 0 {
		cfg.MockServerConfig.Port = 8000
	}
	if cfg.RedisConfig.Host == "" {
		cfg.RedisConfig.Host = "127.0.0.1"
	}
	if cfg.RedisConfig.Port == 0 {
		cfg.RedisConfig.Port = 6379
	}
	if cfg.JWTConfig.Secret == "" {
		cfg.JWTConfig.Secret = "hellobike-mock-secret"
	}
	if cfg.AccessTokenExpiry == 0 {
		cfg.AccessTokenExpiry = 15
	}
	if cfg.RefreshTokenExpiry == 0 {
		cfg.RefreshTokenExpiry = constants.REFRESH_TOKEN_EXPIRY_HOURS
	}
	if cfg.LogPath == "" {
		cfg.LogPath = "logs"
	}
}

// Summary 返回用于日志的配置摘要，隐去预置验证码
func (c AuthAPIConfig) Summary() string {
	code := ""
	if c.Code != "" {
		code = "******"
	}
	return fmt.Sprintf("endpoint=%s sendCodeMobile=%s loginMobile=%s timeout=%ds code=%s",
		c.Endpoint, c.SendCodeMobile, c.LoginMobile, c.TimeoutSeconds, code)
}
