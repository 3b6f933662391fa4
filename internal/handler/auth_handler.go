package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hellobike_login/internal/dto/request"
	"hellobike_login/internal/dto/respond"
	"hellobike_login/internal/infrastructure/middleware"
	"hellobike_login/internal/service"
	"hellobike_login/pkg/constants"
	"hellobike_login/pkg/errorx"
)

// AuthHandler 认证接口处理器
type AuthHandler struct {
	authSvc service.AuthCodeService
}

// NewAuthHandler 创建认证接口处理器
func NewAuthHandler(authSvc service.AuthCodeService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Dispatch 认证接口唯一入口
// POST /auth
// 请求体: request.ActionRequest，按 action 分发：
//   - user.account.sendCodeV2: 发送验证码，响应 data 为空
//   - user.account.login: 验证码登录，响应 data 为 respond.LoginRespond
func (h *AuthHandler) Dispatch(c *gin.Context) {
	var req request.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case constants.ACTION_SEND_CODE:
		if err := h.authSvc.SendCode(ctx, req.Mobile); err != nil {
			HandleError(c, err)
			return
		}
		HandleSuccess(c, nil)
	case constants.ACTION_LOGIN:
		data, err := h.authSvc.Login(ctx, req.Mobile, req.Code)
		if err != nil {
			HandleError(c, err)
			return
		}
		HandleSuccess(c, data)
	default:
		// binding 的 oneof 已经拦截，这里只是兜底
		zap.L().Warn("unknown action", zap.String("action", req.Action))
		HandleError(c, errorx.Newf(errorx.CodeUnknownAction, "不支持的 action: %s", req.Action))
	}
}

// Profile 返回 Access Token 对应的手机号，用于确认登录接口签发的 Token 可用
// GET /auth/profile，需经过 middleware.JWTAuth
func (h *AuthHandler) Profile(c *gin.Context) {
	HandleSuccess(c, respond.ProfileRespond{Mobile: c.GetString(middleware.ContextMobileKey)})
}
