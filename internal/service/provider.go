package service

import (
	myredis "hellobike_login/internal/dao/redis"
	"hellobike_login/internal/service/smscode"
)

// Services 聚合所有 Service 实例，作为 Handler 层依赖注入的入口
type Services struct {
	AuthCode AuthCodeService
}

// NewServices 创建并注入所有 Service 实例
func NewServices(cache myredis.CacheService) *Services {
	return &Services{
		AuthCode: smscode.NewService(cache),
	}
}
