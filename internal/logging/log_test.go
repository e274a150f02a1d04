package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFromContextReturnsStoredLogger(t *testing.T) {
	logger := zap.NewNop().Sugar()
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContextFallsBack(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNewLoggerDebug(t *testing.T) {
	t.Setenv(DebugEnv, "true")
	logger := NewLogger()
	assert.True(t, logger.Desugar().Core().Enabled(zap.DebugLevel))

	t.Setenv(DebugEnv, "false")
	logger = NewLogger()
	assert.False(t, logger.Desugar().Core().Enabled(zap.DebugLevel))
}
