// Package handler 提供模拟认证接口的 HTTP 请求处理器
package handler

import (
	"hellobike_login/internal/service"
)

// Handlers 聚合所有 Handler 实例
type Handlers struct {
	Auth *AuthHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth: NewAuthHandler(svc.AuthCode),
	}
}
