package log

import "go.uber.org/zap/zapcore"

// 日志默认配置值
const (
	// defaultLogLevel 默认日志级别设为 info
	defaultLogLevel = "info"

	// defaultToConsole 默认输出到控制台
	// SDK 场景下通常没有独立的日志目录，控制台是最安全的默认值
	defaultToConsole = true

	// defaultFilePath 默认不写日志文件
	defaultFilePath = ""

	// defaultMaxSize 单个日志文件最大 50MB
	defaultMaxSize = 50

	// defaultMaxBackups 最多保留 5 个备份文件
	defaultMaxBackups = 5

	// defaultMaxAge 日志文件最多保留 14 天
	defaultMaxAge = 14

	// defaultCompress 默认压缩历史日志文件
	defaultCompress = true

	// defaultEnableCaller 默认记录调用者信息
	defaultEnableCaller = true
)

// defaultLevelMap 级别名到 zap 级别的映射
var defaultLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}
