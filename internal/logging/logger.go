// Package logging builds the zap logger used by the command line and adapts
// it to the loader.Logger interface consumed by the library packages.
package logging

import (
	"fmt"
	"io"

	"github.com/erraggy/contractdiff/loader"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a JSON zap logger writing to w at the given level
// ("debug", "info", "warn" or "error").
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core), nil
}

// Adapter wraps a zap logger to implement loader.Logger.
type Adapter struct {
	sugar *zap.SugaredLogger
}

// NewAdapter creates an Adapter. A nil logger yields a no-op adapter.
func NewAdapter(l *zap.Logger) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	return &Adapter{sugar: l.Sugar()}
}

// Debug logs at debug level.
func (a *Adapter) Debug(msg string, attrs ...any) { a.sugar.Debugw(msg, attrs...) }

// Info logs at info level.
func (a *Adapter) Info(msg string, attrs ...any) { a.sugar.Infow(msg, attrs...) }

// Warn logs at warn level.
func (a *Adapter) Warn(msg string, attrs ...any) { a.sugar.Warnw(msg, attrs...) }

// Error logs at error level.
func (a *Adapter) Error(msg string, attrs ...any) { a.sugar.Errorw(msg, attrs...) }

// With returns an adapter that adds attrs to every entry.
func (a *Adapter) With(attrs ...any) loader.Logger {
	return &Adapter{sugar: a.sugar.With(attrs...)}
}

var _ loader.Logger = (*Adapter)(nil)
