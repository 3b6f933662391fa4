// Package service 定义业务层接口，供 Handler 层调用
package service

import (
	"context"

	"hellobike_login/internal/dto/respond"
)

// AuthCodeService 验证码业务接口
// 对应认证接口的两个 action：发送验证码、验证码登录
type AuthCodeService interface {
	// SendCode 发送验证码
	SendCode(ctx context.Context, mobile string) error
	// Login 验证码登录
	Login(ctx context.Context, mobile, code string) (*respond.LoginRespond, error)
}
