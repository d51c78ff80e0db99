package session

import (
	"errors"
	"fmt"
)

// ErrNotInitialized 会话上下文尚未初始化
// 这是调用方的编程错误：Get 永远不会隐式初始化
var ErrNotInitialized = errors.New("session context not initialized")

// ErrNoSubmitter 默认会话没有配置交易提交通道
var ErrNoSubmitter = errors.New("no transaction submitter configured")

// Phase 派发阶段
type Phase string

const (
	// PhaseBefore before 派发阶段
	PhaseBefore Phase = "before"
	// PhaseAfter after 派发阶段
	PhaseAfter Phase = "after"
)

// ListenerError 监听器派发中断错误
// 记录失败前完整跑完的监听器数量，调用方据此判断
// 部分插桩是否可以接受
type ListenerError struct {
	Phase     Phase // 中断发生的阶段
	Completed int   // 失败前完整执行的监听器数量
	Err       error // 监听器返回的原始错误
}

// Error 实现 error 接口
func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener dispatch aborted in %s phase after %d listener(s): %v",
		e.Phase, e.Completed, e.Err)
}

// Unwrap 返回监听器的原始错误
func (e *ListenerError) Unwrap() error {
	return e.Err
}
