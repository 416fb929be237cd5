// Package logging builds the zap logger used for CLI diagnostics.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level names accepted by New.
const (
	LevelQuiet   = "quiet"
	LevelNormal  = "normal"
	LevelVerbose = "verbose"
)

// New returns a console logger writing to w.
// quiet logs errors only, verbose adds debug lines and timestamps.
func New(w io.Writer, level string) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	lvl := zapcore.InfoLevel
	switch level {
	case LevelQuiet:
		lvl = zapcore.ErrorLevel
	case LevelVerbose:
		lvl = zapcore.DebugLevel
	}
	if lvl != zapcore.DebugLevel {
		encCfg.TimeKey = ""
		encCfg.CallerKey = ""
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Sugar()
}

// LevelFor maps the --quiet and --verbose flags to a level name.
// quiet wins when both are set.
func LevelFor(quiet, verbose bool) string {
	switch {
	case quiet:
		return LevelQuiet
	case verbose:
		return LevelVerbose
	}
	return LevelNormal
}
