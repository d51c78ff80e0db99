// Package log 定义 SDK 的核心日志记录接口
//
// 为所有模块提供统一的结构化日志接口，具体实现由
// internal/core/infrastructure/log 提供
package log

import "go.uber.org/zap"

// Logger 定义日志记录器接口
type Logger interface {
	// Debug 记录调试级别的日志
	Debug(msg string)

	// Debugf 使用格式化字符串记录调试级别的日志
	Debugf(format string, args ...interface{})

	// Info 记录信息级别的日志
	Info(msg string)

	// Infof 使用格式化字符串记录信息级别的日志
	Infof(format string, args ...interface{})

	// Warn 记录警告级别的日志
	Warn(msg string)

	// Warnf 使用格式化字符串记录警告级别的日志
	Warnf(format string, args ...interface{})

	// Error 记录错误级别的日志
	Error(msg string)

	// Errorf 使用格式化字符串记录错误级别的日志
	Errorf(format string, args ...interface{})

	// With 返回一个带有额外字段的Logger
	With(args ...interface{}) Logger

	// Sync 同步日志缓冲区到输出
	Sync() error

	// GetZapLogger 获取原始的zap日志记录器
	GetZapLogger() *zap.Logger
}

// Level 日志级别
type Level string

const (
	// DebugLevel 调试级别
	DebugLevel Level = "debug"
	// InfoLevel 信息级别
	InfoLevel Level = "info"
	// WarnLevel 警告级别
	WarnLevel Level = "warn"
	// ErrorLevel 错误级别
	ErrorLevel Level = "error"
)
