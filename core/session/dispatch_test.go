package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingListener 记录收到事件顺序的测试监听器
type recordingListener struct {
	name      string
	log       *[]string
	beforeErr error
	afterErr  error
}

func (l *recordingListener) OnBeforeTransaction(_ context.Context, _ *TransactionEvent) error {
	*l.log = append(*l.log, l.name+":before")
	return l.beforeErr
}

func (l *recordingListener) OnAfterTransaction(_ context.Context, _ *TransactionEvent) error {
	*l.log = append(*l.log, l.name+":after")
	return l.afterErr
}

// newDispatchContext 构造只用于派发测试的上下文
func newDispatchContext() *Context {
	return &Context{id: "test-session"}
}

// TestDispatchOrder 测试派发顺序
func TestDispatchOrder(t *testing.T) {
	t.Run("严格按注册顺序串行派发", func(t *testing.T) {
		c := newDispatchContext()
		var log []string
		c.AddTransactionListener(&recordingListener{name: "a", log: &log})
		c.AddTransactionListener(&recordingListener{name: "b", log: &log})
		c.AddTransactionListener(&recordingListener{name: "c", log: &log})

		ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{Type: EventBeforeTransaction})
		require.NoError(t, err)
		assert.Equal(t, 3, ran)
		assert.Equal(t, []string{"a:before", "b:before", "c:before"}, log)
	})

	t.Run("无监听器时派发零个", func(t *testing.T) {
		c := newDispatchContext()
		ran, err := c.EmitAfterTransaction(context.Background(), TransactionEvent{Type: EventAfterTransaction})
		require.NoError(t, err)
		assert.Zero(t, ran)
	})
}

// TestDispatchError 测试监听器错误中断所在阶段
func TestDispatchError(t *testing.T) {
	boom := errors.New("listener refused")

	c := newDispatchContext()
	var log []string
	c.AddTransactionListener(&recordingListener{name: "a", log: &log})
	c.AddTransactionListener(&recordingListener{name: "b", log: &log, beforeErr: boom})
	c.AddTransactionListener(&recordingListener{name: "c", log: &log})

	ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{Type: EventBeforeTransaction})

	// b 出错：a 完整执行过，c 被跳过
	assert.Equal(t, 1, ran)
	assert.Equal(t, []string{"a:before", "b:before"}, log)

	var le *ListenerError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, PhaseBefore, le.Phase)
	assert.Equal(t, 1, le.Completed)
	assert.ErrorIs(t, err, boom)
}

// mutatingListener 修改事件副本的测试监听器
type mutatingListener struct {
	seen []string
}

func (l *mutatingListener) OnBeforeTransaction(_ context.Context, event *TransactionEvent) error {
	l.seen = append(l.seen, event.MethodName)
	event.MethodName = "mutated"
	return nil
}

func (l *mutatingListener) OnAfterTransaction(_ context.Context, _ *TransactionEvent) error {
	return nil
}

// TestDispatchEventIsolation 测试事件副本隔离
func TestDispatchEventIsolation(t *testing.T) {
	c := newDispatchContext()
	first := &mutatingListener{}
	second := &mutatingListener{}
	c.AddTransactionListener(first)
	c.AddTransactionListener(second)

	_, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{MethodName: "transfer"})
	require.NoError(t, err)

	// 前一个监听器的修改不能泄漏给后一个
	assert.Equal(t, []string{"transfer"}, first.seen)
	assert.Equal(t, []string{"transfer"}, second.seen)
}

// TestRemoveListener 测试按身份移除监听器
func TestRemoveListener(t *testing.T) {
	t.Run("移除后不再收到事件", func(t *testing.T) {
		c := newDispatchContext()
		var log []string
		a := &recordingListener{name: "a", log: &log}
		b := &recordingListener{name: "b", log: &log}
		c.AddTransactionListener(a)
		c.AddTransactionListener(b)

		c.RemoveTransactionListener(a)

		ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{})
		require.NoError(t, err)
		assert.Equal(t, 1, ran)
		assert.Equal(t, []string{"b:before"}, log)
	})

	t.Run("重复注册只移除第一个", func(t *testing.T) {
		c := newDispatchContext()
		var log []string
		a := &recordingListener{name: "a", log: &log}
		c.AddTransactionListener(a)
		c.AddTransactionListener(a)

		c.RemoveTransactionListener(a)

		ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{})
		require.NoError(t, err)
		assert.Equal(t, 1, ran)
	})

	t.Run("移除未注册的监听器为空操作", func(t *testing.T) {
		c := newDispatchContext()
		c.RemoveTransactionListener(&recordingListener{name: "ghost"})

		ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{})
		require.NoError(t, err)
		assert.Zero(t, ran)
	})
}

// removingListener 在 before 钩子内移除另一个监听器
type removingListener struct {
	NopListener
	ctx    *Context
	target TransactionListener
	log    *[]string
}

func (l *removingListener) OnBeforeTransaction(_ context.Context, _ *TransactionEvent) error {
	*l.log = append(*l.log, "remover:before")
	l.ctx.RemoveTransactionListener(l.target)
	return nil
}

// TestRemoveListenerDuringDispatch 测试派发进行中的移除
// 派发遍历锁内快照：本次派发开始前注册的监听器仍收到本次事件，
// 被移除者从下一次派发起不再收到事件
func TestRemoveListenerDuringDispatch(t *testing.T) {
	c := newDispatchContext()
	var log []string
	peer := &recordingListener{name: "peer", log: &log}
	c.AddTransactionListener(&removingListener{ctx: c, target: peer, log: &log})
	c.AddTransactionListener(peer)

	// 第一次派发：快照先于移除，peer 仍收到事件
	ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{})
	require.NoError(t, err)
	assert.Equal(t, 2, ran)
	assert.Equal(t, []string{"remover:before", "peer:before"}, log)

	// 第二次派发：peer 已出注册表
	log = nil
	ran, err = c.EmitBeforeTransaction(context.Background(), TransactionEvent{})
	require.NoError(t, err)
	assert.Equal(t, 1, ran)
	assert.Equal(t, []string{"remover:before"}, log)
}

// churnListener 并发注册/注销用的最小监听器
type churnListener struct {
	NopListener
}

// TestDispatchConcurrentMutation 测试派发与注册表并发变更
// 快照在单写锁内复制，另一线程的 Add/Remove 不得使派发崩溃
func TestDispatchConcurrentMutation(t *testing.T) {
	c := newDispatchContext()
	c.AddTransactionListener(&churnListener{})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			l := &churnListener{}
			c.AddTransactionListener(l)
			c.RemoveTransactionListener(l)
		}
	}()

	for i := 0; i < 200; i++ {
		ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{})
		require.NoError(t, err)
		// 初始监听器始终在注册表内
		assert.GreaterOrEqual(t, ran, 1)
	}

	close(done)
	wg.Wait()
}

// TestNopListener 测试空监听器可安全嵌入
func TestNopListener(t *testing.T) {
	c := newDispatchContext()
	c.AddTransactionListener(NopListener{})

	ran, err := c.EmitBeforeTransaction(context.Background(), TransactionEvent{})
	require.NoError(t, err)
	assert.Equal(t, 1, ran)

	ran, err = c.EmitAfterTransaction(context.Background(), TransactionEvent{})
	require.NoError(t, err)
	assert.Equal(t, 1, ran)
}
