package respond

// LoginRespond 模拟认证接口的登录响应数据
// 使用位置:
//   - internal/service/smscode/service.go: Login
type LoginRespond struct {
	Mobile       string `json:"mobile"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProfileRespond Access Token 校验结果
type ProfileRespond struct {
	Mobile string `json:"mobile"`
}
