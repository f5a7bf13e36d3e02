package logger

import (
	"testing"

	"github.com/GlebRadaev/coursehub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		config         *config.Config
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Valid log level info",
			config:         &config.Config{LogLvl: "info"},
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "Valid log level warn",
			config:         &config.Config{LogLvl: "warn"},
			expectedLogLvl: zapcore.WarnLevel,
		},
		{
			name:           "Valid log level error",
			config:         &config.Config{LogLvl: "error"},
			expectedLogLvl: zapcore.ErrorLevel,
		},
		{
			name:           "Valid log level debug",
			config:         &config.Config{LogLvl: "debug", LogFormat: "json"},
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:          "Invalid log level",
			config:        &config.Config{LogLvl: "invalid"},
			expectedError: true,
		},
		{
			name:          "Invalid log format",
			config:        &config.Config{LogLvl: "info", LogFormat: "xml"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
		})
	}
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name             string
		format           string
		expectedEncoding string
	}{
		{name: "Default is console", format: "", expectedEncoding: "console"},
		{name: "Console", format: "console", expectedEncoding: "console"},
		{name: "Json", format: "json", expectedEncoding: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &config.Config{LogLvl: "info", LogFormat: tt.format}

			c, err := newConfig(conf)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedEncoding, c.Encoding)
			assert.Equal(t, tt.format, conf.LogFormat)
			assert.Equal(t, serviceName, c.InitialFields["service"])
			assert.Equal(t, "caller", c.EncoderConfig.CallerKey)
		})
	}
}
