package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/regionator/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_LevelApplied(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for name, level := range cases {
		t.Run(name, func(t *testing.T) {
			logger, err := NewLogger(config.LoggingConfig{Level: name, Format: "json"})
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(level))
			if level > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(level-1))
			}
		})
	}
}

func TestNewZapConfig_KeepsStdoutFree(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			zapCfg, err := newZapConfig(config.LoggingConfig{Level: "info", Format: format})
			require.NoError(t, err)
			assert.Equal(t, []string{"stderr"}, zapCfg.OutputPaths)
			assert.Equal(t, []string{"stderr"}, zapCfg.ErrorOutputPaths)
			assert.Equal(t, AppName, zapCfg.InitialFields["app"])
		})
	}
}

func TestNewZapConfig_ConsoleOmitsStacktraces(t *testing.T) {
	zapCfg, err := newZapConfig(config.LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, zapCfg.DisableStacktrace)
	assert.True(t, zapCfg.Development)
}
