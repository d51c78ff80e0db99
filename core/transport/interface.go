// Package transport provides the raw HTTP transport seam for mirror node queries.
package transport

import (
	"context"
)

// Transport 原始镜像节点传输接口 - 镜像查询与网络层之间的唯一通道
// 实现方只负责执行一次 HTTP GET：网络失败时返回 error，
// 否则原样返回状态码和响应体，不做任何重试或解析
type Transport interface {
	// Get 执行一次 HTTP GET 请求
	// url: 完整的请求地址
	// 返回: HTTP 状态码、原始响应体；仅在请求无法完成时返回 error
	Get(ctx context.Context, url string) (status int, body []byte, err error)
}
