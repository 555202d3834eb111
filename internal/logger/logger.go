package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var instance *zap.SugaredLogger

// Initialize - настраивает синглтон логера с указанным уровнем (debug, info, warn, error).
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	// даты в логах читаемые, учёт ведётся вручную и логи смотрит человек
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	instance = logger.Named("stitchmate").Sugar()
	return nil
}

// Get - возвращает логер; без Initialize отдаёт no-op логер
func Get() *zap.SugaredLogger {
	if instance == nil {
		return zap.NewNop().Sugar()
	}
	return instance
}

// Sync - сбрасывает буферы
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

func Info(args ...interface{}) {
	Get().Infoln(args...)
}

func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Infow - структурированная запись уровня Info (сообщение + пары ключ/значение)
func Infow(msg string, keysAndValues ...interface{}) {
	Get().Infow(msg, keysAndValues...)
}

// Warnw - структурированная запись уровня Warn
func Warnw(msg string, keysAndValues ...interface{}) {
	Get().Warnw(msg, keysAndValues...)
}

// Panic - логирует и паникует, используется в тестах при ошибке инициализации
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
