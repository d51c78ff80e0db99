package mirror

import "fmt"

// 查询错误码
// 传输失败与协议失败共用一种错误类型，用 Code 区分
const (
	// CodeTransport 传输失败：GET 未能完成（网络/DNS/超时）
	CodeTransport = "TRANSPORT_ERROR"
	// CodeNotFound 协议失败：期望单条结果但信封中的条目列表为空
	CodeNotFound = "NOT_FOUND"
	// CodeBadResponse 协议失败：2xx 响应体无法解析为 JSON 对象，
	// 或单实体响应缺少最低限度的标识字段
	CodeBadResponse = "BAD_RESPONSE"
)

// statusCode 由 HTTP 状态码派生协议失败错误码
func statusCode(status int) string {
	return fmt.Sprintf("HTTP_%d", status)
}

// QueryError 镜像节点查询错误
// 本层不做任何重试；重试策略属于调用方
type QueryError struct {
	Code   string // 机器可读错误码
	Path   string // 请求路径（诊断用）
	Status int    // HTTP 状态码，传输失败时为 0
	Err    error  // 底层错误（可选）
}

// Error 实现 error 接口
func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mirror query %s: %s: %v", e.Path, e.Code, e.Err)
	}
	return fmt.Sprintf("mirror query %s: %s", e.Path, e.Code)
}

// Unwrap 返回底层错误
func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsTransport 是否为传输失败（网络未达，与协议失败相对）
func (e *QueryError) IsTransport() bool {
	return e.Code == CodeTransport
}

// transportError 构造传输失败错误
func transportError(path string, err error) *QueryError {
	return &QueryError{Code: CodeTransport, Path: path, Err: err}
}

// protocolError 构造 HTTP 状态派生的协议失败错误
func protocolError(path string, status int) *QueryError {
	return &QueryError{Code: statusCode(status), Path: path, Status: status}
}
