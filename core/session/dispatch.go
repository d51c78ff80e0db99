package session

import (
	"context"
)

// 事件派发
//
// 两个派发点都严格按注册顺序串行执行：前一个监听器完整返回后
// 下一个才开始，监听器因此可以依赖更早注册的监听器已经跑完。
// 没有并发、没有 fire-and-forget，也没有超时和取消：
// 派发一旦开始就运行到结束或第一个监听器错误

// EmitBeforeTransaction 派发账本调用前事件
//
// 每笔账本调用恰好派发一次。每个监听器收到事件的独立副本，
// 监听器对事件的修改不会泄漏给后续监听器。
// 返回完整执行的监听器数量；某个监听器返回错误时，
// 剩余监听器被跳过，错误以 ListenerError 形式返回
func (c *Context) EmitBeforeTransaction(ctx context.Context, event TransactionEvent) (int, error) {
	return c.dispatch(ctx, PhaseBefore, event)
}

// EmitAfterTransaction 派发账本调用后事件
// 账本操作成功与否都恰好派发一次，语义与 before 派发一致
func (c *Context) EmitAfterTransaction(ctx context.Context, event TransactionEvent) (int, error) {
	return c.dispatch(ctx, PhaseAfter, event)
}

// dispatch 串行派发事件到监听器快照
func (c *Context) dispatch(ctx context.Context, phase Phase, event TransactionEvent) (int, error) {
	listeners := c.snapshotListeners()

	for i, listener := range listeners {
		// 每个监听器拿到自己的副本
		copied := event

		var err error
		switch phase {
		case PhaseBefore:
			err = listener.OnBeforeTransaction(ctx, &copied)
		case PhaseAfter:
			err = listener.OnAfterTransaction(ctx, &copied)
		}

		if err != nil {
			return i, &ListenerError{Phase: phase, Completed: i, Err: err}
		}
	}

	return len(listeners), nil
}
