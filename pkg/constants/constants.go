package constants

import "time"

const (
	DEFAULT_ENDPOINT = "https://api.hellobike.com/auth" // 认证接口地址

	ACTION_SEND_CODE = "user.account.sendCodeV2" // 发送验证码
	ACTION_LOGIN     = "user.account.login"      // 验证码登录

	CODE_LENGTH                = 6               // 验证码位数
	CODE_EXPIRY                = 5 * time.Minute // 验证码有效期
	CODE_RESEND_COOLDOWN       = time.Minute     // 同一手机号重发间隔
	CODE_MAX_ATTEMPTS          = 5               // 同一验证码允许输错的次数
	REFRESH_TOKEN_EXPIRY_HOURS = 168             // Refresh Token 有效期（小时），168小时 = 7天

	AUTH_CODE_KEY_PREFIX  = "auth_code_"     // 验证码缓存键前缀
	AUTH_THROTTLE_PREFIX  = "auth_throttle_" // 发送频率限制键前缀
	AUTH_ATTEMPT_PREFIX   = "auth_attempt_"  // 验证码错误次数键前缀
	USER_TOKEN_KEY_PREFIX = "user_token:"    // Refresh Token ID 缓存键前缀
)
