package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger, stderr'e okunabilir, isteğe bağlı olarak dönen log dosyasına
// JSON yazan bir zap logger oluşturur.
func newLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	if cfg.File != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   false,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

// clientLogger, zap logger'ı lightpack.Logger arayüzüne uyarlar.
// Kütüphane mesajları debug seviyesinde yazılır.
func clientLogger(logger *zap.Logger) (*log.Logger, error) {
	return zap.NewStdLogAt(logger.Named("lightpack"), zapcore.DebugLevel)
}
