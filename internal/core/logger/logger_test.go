package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"go-users-api/internal/core/logger"
)

func TestBuildFallsBackToInfoOnBadLevel(t *testing.T) {
	l, cleanup := logger.Build(logger.Options{Level: "nope", JSON: true})
	defer cleanup()

	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWithRotateWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, cleanup := logger.NewWithRotate("debug", true, logger.FileRotate{
		Enable:   true,
		Filename: path,
	})
	l.Info("rotate sink up")
	cleanup()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "rotate sink up")
}
