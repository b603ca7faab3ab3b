package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("FUNDTRACKER_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts[0] = zap.AddStacktrace(zap.InfoLevel)
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "FUNDTRACKER_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("FUNDTRACKER_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok {
		logger = New()
		logger.Warn("no logger found in ctx - creating new one")
	}
	return logger
}

// Info logs through the process-wide logger, printf style.
func Info(template string, args ...interface{}) {
	zap.S().Infof(template, args...)
}

func Warn(template string, args ...interface{}) {
	zap.S().Warnf(template, args...)
}

func Error(err error) {
	zap.S().Error(err)
}

func Fatal(err error) {
	zap.S().Fatal(err)
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
