package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger() *zap.Logger {
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.DisableStacktrace = true

	logger, err := loggerConfig.Build(zap.Fields(zap.String("service", "stockroom")))
	if nil != err {
		panic(err)
	}

	return logger
}
