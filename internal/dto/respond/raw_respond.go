package respond

import (
	"encoding/json"
	"net/http"
)

// RawRespond 认证接口的原始响应
// Body 按原样保存，调用方只负责回显，不依赖其结构
// 使用位置:
//   - internal/infrastructure/authapi/client.go: PostAction
//   - internal/service/authflow/runner.go
type RawRespond struct {
	StatusCode int
	Body       []byte
}

// Text 响应体按文本返回
func (r *RawRespond) Text() string {
	return string(r.Body)
}

// OK 状态码是否为 2xx
func (r *RawRespond) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Envelope 常见的 {code, msg, success, data} 响应外壳
// 仅用于日志，解析失败不影响流程
type Envelope struct {
	Code    json.RawMessage `json:"code"`
	Msg     string          `json:"msg"`
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// Envelope 尽力解析响应外壳；非 JSON 返回 false
func (r *RawRespond) Envelope() (Envelope, bool) {
	var env Envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return Envelope{}, false
	}
	return env, true
}
