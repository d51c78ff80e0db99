// Package session provides the process-wide session context and the
// transaction lifecycle event dispatch around ledger-mutating calls.
package session

import (
	"context"
	"time"
)

// EventType 交易生命周期事件类型
type EventType string

const (
	// EventBeforeTransaction 账本调用前事件
	EventBeforeTransaction EventType = "transaction:before"
	// EventAfterTransaction 账本调用后事件（成功或失败都会发出）
	EventAfterTransaction EventType = "transaction:after"
)

// TransactionEvent 交易生命周期事件
//
// before 事件只携带 Type/SessionID/ServiceName/MethodName/Timestamp；
// after 事件总是携带 Duration，并且 Status 与 Err 恰好二者取一：
// 成功时有 Status（和 TransactionID），失败时有 Err，绝不同时出现
type TransactionEvent struct {
	Type        EventType     // 事件类型
	SessionID   string        // 发出事件的会话上下文ID
	ServiceName string        // 服务名，如 account
	MethodName  string        // 方法名，如 createAccount
	Timestamp   time.Time     // 事件构造时间

	// === 仅 after 事件携带 ===
	TransactionID string        // 交易ID（仅成功时）
	Status        string        // 共识状态（仅成功时）
	Err           error         // 原始失败错误（仅失败时，不做包装）
	Duration      time.Duration // 从 before 派发开始到 after 派发前的耗时
}

// TransactionListener 交易生命周期监听器
//
// 两个钩子都是可选的：嵌入 NopListener 即可只实现其中一个。
// 钩子返回 error 时，该阶段剩余的监听器不再被调用，
// 错误会向上传播给派发方
type TransactionListener interface {
	// OnBeforeTransaction 账本调用前回调
	OnBeforeTransaction(ctx context.Context, event *TransactionEvent) error

	// OnAfterTransaction 账本调用后回调
	OnAfterTransaction(ctx context.Context, event *TransactionEvent) error
}

// NopListener 空实现 - 嵌入后按需覆盖单个钩子
type NopListener struct{}

// OnBeforeTransaction 空实现
func (NopListener) OnBeforeTransaction(context.Context, *TransactionEvent) error {
	return nil
}

// OnAfterTransaction 空实现
func (NopListener) OnAfterTransaction(context.Context, *TransactionEvent) error {
	return nil
}
