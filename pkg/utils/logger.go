package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger tees JSON (console in debug) output to stdout and to a rotated
// <name>.log under app.LogPath. Every entry carries the app name.
func InitLogger(app AppConfig) (*zap.Logger, error) {
	level, err := logLevel(app)
	if err != nil {
		return nil, err
	}

	if app.LogPath != "" {
		if err := os.MkdirAll(app.LogPath, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder
	if app.Debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(app.LogPath, app.Name+".log"),
		MaxSize:    app.LogMaxSizeMB,
		MaxBackups: app.LogMaxBackups,
		MaxAge:     app.LogMaxAgeDays,
		Compress:   true,
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder(encoderConfig), zapcore.AddSync(rotated), level),
		zapcore.NewCore(encoder(encoderConfig), zapcore.Lock(os.Stdout), level),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("app", app.Name)),
	), nil
}

// logLevel honours LOG_LEVEL; debug mode lowers the default to debug.
func logLevel(app AppConfig) (zapcore.Level, error) {
	if app.LogLevel == "" {
		if app.Debug {
			return zapcore.DebugLevel, nil
		}
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(app.LogLevel)
	if err != nil {
		return level, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
