// Package logging builds the zap logger used by the command-line tools and
// carries it through a context.
package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
)

// DebugEnv switches NewLogger to the development config when set to "true".
const DebugEnv = "CSRINFO_DEBUG"

// NewLogger returns a new zap.SugaredLogger writing to stderr, so command
// output on stdout stays machine readable.
func NewLogger() *zap.SugaredLogger {
	var config zap.Config
	if debugMode, ok := os.LookupEnv(DebugEnv); ok && debugMode == "true" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger.Named("csrinfo").Sugar()
}

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a new one.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return logger
	}

	return NewLogger()
}
