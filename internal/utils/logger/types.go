package logger

// LoggingConfig defines the configuration for logging.
// LoggingConfig 定义日志配置。
type LoggingConfig struct {
	Level string
	// Level: 日志级别（debug, info, warn, error）
	Path string
	// Path: 日志文件路径（为空时输出到 stderr）
	MaxSize int
	// MaxSize: 轮转前的最大大小（MB）
	MaxBackups int
	// MaxBackups: 保留的旧文件最大数量
	MaxAge int
	// MaxAge: 保留旧文件的最大天数
	Compress bool
	// Compress: 是否压缩旧文件
}
