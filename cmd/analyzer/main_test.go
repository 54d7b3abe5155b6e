package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Totarae/PageAnalyzer/internal/config"
)

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = newLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestSecretKey(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	assert.Equal(t, "configured", secretKey(&config.Config{SecretKey: "configured"}, logger))
	assert.Zero(t, logs.Len())

	generated := secretKey(&config.Config{}, logger)
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, secretKey(&config.Config{}, logger))
	assert.Equal(t, 2, logs.Len())
}
