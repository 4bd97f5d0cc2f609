package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// verbosityToLevel maps -v counts to zap levels: none -> warn, -v -> info,
// -vv and above -> debug
func verbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// newLogger builds the CLI logger. Logs go to stderr so generated output
// and JSON on stdout stay clean.
func newLogger(verbosity int, quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(verbosityToLevel(verbosity))
	config.DisableStacktrace = verbosity < 2
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

func cliLogger() (*zap.Logger, error) {
	return newLogger(getInt("verbose", 0), getBool("quiet", false))
}
