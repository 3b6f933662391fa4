package request

// ActionRequest 模拟认证接口收到的请求体
// 同一个接口通过 action 区分操作，code 只在登录时必填
// 使用位置:
//   - internal/handler/auth_handler.go: Dispatch
type ActionRequest struct {
	Mobile string `json:"mobile" binding:"required"`
	Code   string `json:"code" binding:"required_if=Action user.account.login,omitempty,numeric,len=6"`
	Action string `json:"action" binding:"required,oneof=user.account.sendCodeV2 user.account.login"`
}
