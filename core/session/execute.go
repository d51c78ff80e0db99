package session

import (
	"context"

	"github.com/hashgrove/v1/pkg/interfaces/ledger"
)

// LedgerCall 一次账本变更操作
// 由服务层提供：通过会话句柄完成真正的构建/签名/提交，
// 成功时返回交易ID和共识状态
type LedgerCall func(ctx context.Context, session ledger.Session) (txID string, status string, err error)

// DefaultStatus 账本调用未报告状态时使用的成功状态
const DefaultStatus = "SUCCESS"

// Execute 按完整生命周期执行一次账本变更操作
//
// 状态机单向推进：空闲 → before 已派发 → 执行中 → after 已派发（终态），
// 每次调用恰好构造一个事件信封，两个派发点各用一份副本。
//
// Duration 从 before 派发开始前计起，到 after 派发前为止 ——
// 监听器在 before 阶段的耗时是调用可观测成本的一部分，被计入在内。
//
// 监听器错误只中断所在阶段的剩余监听器，不会取消账本操作本身：
// before 阶段出错后账本调用照常执行，after 事件也照常派发。
// 返回错误的优先级：账本操作错误 > before 监听器错误 > after 监听器错误
func (c *Context) Execute(ctx context.Context, serviceName, methodName string, call LedgerCall) (string, error) {
	event := TransactionEvent{
		Type:        EventBeforeTransaction,
		SessionID:   c.id,
		ServiceName: serviceName,
		MethodName:  methodName,
		Timestamp:   now(),
	}

	start := now()
	_, beforeErr := c.EmitBeforeTransaction(ctx, event)

	txID, status, callErr := call(ctx, c.session)

	after := TransactionEvent{
		Type:        EventAfterTransaction,
		SessionID:   c.id,
		ServiceName: serviceName,
		MethodName:  methodName,
		Timestamp:   now(),
		Duration:    now().Sub(start),
	}

	if callErr != nil {
		// 失败：携带原始错误，不带状态和交易ID
		after.Err = callErr
	} else {
		if status == "" {
			status = DefaultStatus
		}
		after.Status = status
		after.TransactionID = txID
	}

	_, afterErr := c.EmitAfterTransaction(ctx, after)

	switch {
	case callErr != nil:
		return "", callErr
	case beforeErr != nil:
		return txID, beforeErr
	case afterErr != nil:
		return txID, afterErr
	default:
		return txID, nil
	}
}
