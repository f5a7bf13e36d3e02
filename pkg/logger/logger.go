package logger

import (
	"fmt"

	"github.com/GlebRadaev/coursehub/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName = "coursehub"
	timeLayout  = "15:04:05 02-01-2006"
)

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
}

// InitLogger replaces the global zap logger. Every entry carries the service
// name and its caller.
func InitLogger(conf *config.Config) error {
	c, err := newConfig(conf)
	if err != nil {
		return err
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

func newConfig(conf *config.Config) (zap.Config, error) {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return zap.Config{}, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoding := conf.LogFormat
	switch encoding {
	case "", "console":
		encoding = "console"
		encodeConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encodeConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encodeConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		return zap.Config{}, fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Sampling:         nil,
		Encoding:         encoding,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]interface{}{"service": serviceName},
	}, nil
}
