package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "dev"
	logOutput     = "stderr"
)

var logger *zap.Logger

// stdout belongs to the command result (a price, a usage line), logs never go there.
func init() {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var cfg zap.Config
	switch env {
	case "dev":
		cfg = zap.NewDevelopmentConfig()
	case "prod":
		cfg = zap.NewProductionConfig()
	default:
		log.Fatalf("logger init: unknown %s %q", logEnvKey, env)
	}
	cfg.OutputPaths = []string{logOutput}
	cfg.ErrorOutputPaths = []string{logOutput}

	var err error
	logger, err = cfg.Build()
	if err != nil {
		log.Fatal("logger init", err)
	}
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}

// Sync flushes buffered entries; call it before os.Exit.
func Sync() {
	_ = logger.Sync()
}
