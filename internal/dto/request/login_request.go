package request

// LoginRequest 验证码登录请求
// 使用位置:
//   - internal/service/authflow/runner.go: Login
type LoginRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
	Action string `json:"action"`
}
