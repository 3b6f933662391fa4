package request

// SendCodeRequest 发送验证码请求
// 使用位置:
//   - internal/service/authflow/runner.go: SendVerificationCode
type SendCodeRequest struct {
	Mobile string `json:"mobile"`
	Action string `json:"action"`
}
