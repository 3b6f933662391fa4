// Package smscode 模拟认证接口的业务逻辑：发送验证码与验证码登录
// 验证码不经过真实短信通道，只写入缓存并打到日志里
package smscode

import (
	"context"
	"crypto/subtle"
	"strconv"

	"go.uber.org/zap"

	myredis "hellobike_login/internal/dao/redis"
	"hellobike_login/internal/dto/respond"
	"hellobike_login/pkg/constants"
	"hellobike_login/pkg/errorx"
	"hellobike_login/pkg/util/jwt"
	"hellobike_login/pkg/util/random"
)

// Service 验证码业务实现
type Service struct {
	cache myredis.CacheService
}

// NewService 创建验证码服务
func NewService(cache myredis.CacheService) *Service {
	return &Service{cache: cache}
}

func codeKey(mobile string) string     { return constants.AUTH_CODE_KEY_PREFIX + mobile }
func throttleKey(mobile string) string { return constants.AUTH_THROTTLE_PREFIX + mobile }
func attemptKey(mobile string) string  { return constants.AUTH_ATTEMPT_PREFIX + mobile }

// SendCode 为 mobile 生成 6 位验证码
// 同一手机号在冷却时间内只能发送一次，先占位后写入验证码，写入失败时回滚占位
func (s *Service) SendCode(ctx context.Context, mobile string) error {
	ok, err := s.cache.SetNX(ctx, throttleKey(mobile), "1", constants.CODE_RESEND_COOLDOWN)
	if err != nil {
		zap.L().Error("缓存频率检查异常", zap.Error(err), zap.String("mobile", mobile))
		return errorx.ErrServerBusy
	}
	if !ok {
		return errorx.New(errorx.CodeThrottled, "目前还不能发送验证码，请稍后重试或输入已发送的验证码")
	}

	code := strconv.Itoa(random.GetRandomInt(constants.CODE_LENGTH))
	if err := s.cache.Set(ctx, codeKey(mobile), code, constants.CODE_EXPIRY); err != nil {
		zap.L().Error("缓存写入验证码失败", zap.Error(err), zap.String("mobile", mobile))
		_ = s.cache.Delete(ctx, throttleKey(mobile))
		return errorx.ErrServerBusy
	}
	// 新验证码重新计算错误次数
	_ = s.cache.Delete(ctx, attemptKey(mobile))

	zap.L().Info("【MockSMS】验证码已生成", zap.String("mobile", mobile), zap.String("code", code))
	return nil
}

// Login 校验验证码并签发双 Token，验证码一次有效
func (s *Service) Login(ctx context.Context, mobile, code string) (*respond.LoginRespond, error) {
	stored, err := s.cache.Get(ctx, codeKey(mobile))
	if err != nil {
		zap.L().Error("读取验证码失败", zap.Error(err), zap.String("mobile", mobile))
		return nil, errorx.ErrServerBusy
	}
	if stored == "" {
		return nil, errorx.ErrInvalidCode
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return nil, s.recordFailedAttempt(ctx, mobile)
	}
	if err := s.cache.Delete(ctx, codeKey(mobile)); err != nil {
		zap.L().Error("删除验证码失败", zap.Error(err), zap.String("mobile", mobile))
		return nil, errorx.ErrServerBusy
	}
	_ = s.cache.Delete(ctx, attemptKey(mobile))

	accessToken, err := jwt.GenerateAccessToken(mobile)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeTokenError, "Token 签发失败")
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(mobile)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeTokenError, "Token 签发失败")
	}

	// 后登录的会话覆盖先登录的
	if err := s.cache.Set(ctx, constants.USER_TOKEN_KEY_PREFIX+mobile, tokenID, jwt.RefreshTokenExpiry()); err != nil {
		zap.L().Error("存储 Token ID 失败", zap.Error(err))
	}

	return &respond.LoginRespond{
		Mobile:       mobile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// recordFailedAttempt 累计错误次数，达到上限后作废验证码
func (s *Service) recordFailedAttempt(ctx context.Context, mobile string) error {
	n, err := s.cache.Incr(ctx, attemptKey(mobile), constants.CODE_EXPIRY)
	if err != nil {
		zap.L().Error("记录验证码错误次数失败", zap.Error(err), zap.String("mobile", mobile))
		return errorx.ErrServerBusy
	}
	if n < constants.CODE_MAX_ATTEMPTS {
		return errorx.ErrInvalidCode
	}

	zap.L().Warn("验证码错误次数过多，已作废", zap.String("mobile", mobile), zap.Int64("attempts", n))
	_ = s.cache.Delete(ctx, codeKey(mobile))
	_ = s.cache.Delete(ctx, attemptKey(mobile))
	return errorx.New(errorx.CodeInvalidCode, "验证码错误次数过多，请重新获取验证码")
}
