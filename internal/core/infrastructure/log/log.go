// Package log 提供基于zap的日志记录器实现
// 支持控制台输出、文件输出和基于lumberjack的日志轮转
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	logconfig "github.com/hashgrove/v1/internal/config/log"
	logInterface "github.com/hashgrove/v1/pkg/interfaces/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// 全局日志实例，使用接口类型
	globalLogger logInterface.Logger
	// 用于保护全局日志实例的互斥锁
	mu sync.RWMutex
)

// Logger 是日志记录器的结构体，实现了log.Logger接口
type Logger struct {
	zapLogger *zap.Logger
	sugar     *zap.SugaredLogger
}

// 初始化全局日志记录器
func init() {
	ResetDefault()
}

// ResetDefault 重置全局日志记录器为默认配置
func ResetDefault() {
	logger, err := New(logconfig.New(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize default logger: %v\n", err)
		return
	}
	SetLogger(logger)
}

// SetLogger 设置全局日志记录器
func SetLogger(logger logInterface.Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetLogger 获取全局日志记录器
func GetLogger() logInterface.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// New 根据配置创建新的日志记录器
func New(config *logconfig.Config) (logInterface.Logger, error) {
	level := zap.NewAtomicLevelAt(config.GetZapLevel())

	var cores []zapcore.Core

	// 1. 控制台输出
	if config.IsConsoleEnabled() {
		cores = append(cores, zapcore.NewCore(
			config.CreateConsoleEncoder(),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	// 2. 文件输出（带轮转）
	if path := config.GetFilePath(); path != "" {
		writer, err := createFileWriter(path, config)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(config.CreateFileEncoder(), writer, level))
	}

	// 没有任何输出目标时退回控制台，日志绝不静默丢弃
	if len(cores) == 0 {
		cores = append(cores, zapcore.NewCore(
			config.CreateConsoleEncoder(),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}

	var options []zap.Option
	if config.IsCallerEnabled() {
		options = append(options, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	zapLogger := zap.New(zapcore.NewTee(cores...), options...)

	return &Logger{
		zapLogger: zapLogger,
		sugar:     zapLogger.Sugar(),
	}, nil
}

// createFileWriter 创建带轮转的日志文件写入器
func createFileWriter(logPath string, config *logconfig.Config) (zapcore.WriteSyncer, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", logDir, err)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    config.GetMaxSize(), // megabytes
		MaxBackups: config.GetMaxBackups(),
		MaxAge:     config.GetMaxAge(), // days
		Compress:   config.IsCompressionEnabled(),
	}), nil
}

// ===== Logger接口实现 =====

// Debug 记录调试级别的日志
func (l *Logger) Debug(msg string) {
	l.sugar.Debug(msg)
}

// Debugf 使用格式化字符串记录调试级别的日志
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info 记录信息级别的日志
func (l *Logger) Info(msg string) {
	l.sugar.Info(msg)
}

// Infof 使用格式化字符串记录信息级别的日志
func (l *Logger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warn 记录警告级别的日志
func (l *Logger) Warn(msg string) {
	l.sugar.Warn(msg)
}

// Warnf 使用格式化字符串记录警告级别的日志
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Error 记录错误级别的日志
func (l *Logger) Error(msg string) {
	l.sugar.Error(msg)
}

// Errorf 使用格式化字符串记录错误级别的日志
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// With 返回一个带有额外字段的Logger
func (l *Logger) With(args ...interface{}) logInterface.Logger {
	sugar := l.sugar.With(args...)
	return &Logger{
		zapLogger: sugar.Desugar(),
		sugar:     sugar,
	}
}

// Sync 同步日志缓冲区到输出
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// GetZapLogger 获取原始的zap日志记录器
func (l *Logger) GetZapLogger() *zap.Logger {
	return l.zapLogger
}

// 确保实现了Logger接口
var _ logInterface.Logger = (*Logger)(nil)
