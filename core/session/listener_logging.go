package session

import (
	"context"

	logInterface "github.com/hashgrove/v1/pkg/interfaces/log"
)

// LoggingListener 结构化日志监听器
// 把交易生命周期事件写入日志记录器，自身永不返回错误
type LoggingListener struct {
	logger logInterface.Logger
}

// NewLoggingListener 创建日志监听器
func NewLoggingListener(logger logInterface.Logger) *LoggingListener {
	return &LoggingListener{logger: logger}
}

// OnBeforeTransaction 记录账本调用开始
func (l *LoggingListener) OnBeforeTransaction(_ context.Context, event *TransactionEvent) error {
	l.logger.Debugf("transaction started: %s.%s session=%s",
		event.ServiceName, event.MethodName, event.SessionID)
	return nil
}

// OnAfterTransaction 记录账本调用结果
func (l *LoggingListener) OnAfterTransaction(_ context.Context, event *TransactionEvent) error {
	if event.Err != nil {
		l.logger.Errorf("transaction failed: %s.%s duration=%s error=%v",
			event.ServiceName, event.MethodName, event.Duration, event.Err)
		return nil
	}

	l.logger.Infof("transaction completed: %s.%s id=%s status=%s duration=%s",
		event.ServiceName, event.MethodName, event.TransactionID, event.Status, event.Duration)
	return nil
}

// 确保实现了TransactionListener接口
var _ TransactionListener = (*LoggingListener)(nil)
