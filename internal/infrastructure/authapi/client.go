// Package authapi 封装对认证接口的调用
// 所有操作共用同一个地址，由请求体中的 action 字段区分
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hellobike_login/internal/dto/respond"
	"hellobike_login/pkg/errorx"
)

// Client 认证接口客户端
// Service 层依赖此接口，测试中可替换为桩实现
type Client interface {
	// PostAction 将 payload 编码为 JSON 并 POST 到认证接口，返回原始响应
	PostAction(ctx context.Context, payload any) (*respond.RawRespond, error)
}

// HTTPClient 基于 net/http 的 Client 实现
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient 创建认证接口客户端
// timeout 为 0 时不设置超时；每次请求使用独立连接，不复用
func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	return &HTTPClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// PostAction 不检查状态码，非 2xx 的响应同样原样返回；
// 只有请求构造、网络传输、读取响应体失败时才返回错误
func (c *HTTPClient) PostAction(ctx context.Context, payload any) (*respond.RawRespond, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeRequestBuild, "序列化请求体失败")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeRequestBuild, "构造请求失败: %s", c.endpoint)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeNetwork, "请求认证接口失败: %s", c.endpoint)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeReadBody, "读取认证接口响应失败")
	}

	zap.L().Debug("认证接口响应",
		zap.String("endpoint", c.endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("cost", time.Since(start)),
	)
	return &respond.RawRespond{StatusCode: resp.StatusCode, Body: data}, nil
}

var _ Client = (*HTTPClient)(nil)
