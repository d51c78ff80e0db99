package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RESTTransport 基于 net/http 的镜像节点传输实现
type RESTTransport struct {
	httpClient *http.Client
}

// NewRESTTransport 创建 REST 传输
// timeout 为 0 时使用默认的 30 秒超时
func NewRESTTransport(timeout time.Duration) *RESTTransport {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &RESTTransport{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Get 执行一次 GET 请求并读取完整响应体
// 非 2xx 状态不视为 error，由上层分类处理
func (t *RESTTransport) Get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	return resp.StatusCode, body, nil
}

// Close 关闭空闲连接
func (t *RESTTransport) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}

// 确保实现了Transport接口
var _ Transport = (*RESTTransport)(nil)
