package badgerfx

import (
	"go.uber.org/zap"
)

// zapLogger adapts zap to badger.Logger. Badger reports routine compaction
// and replay progress at info level, which is demoted to debug here.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *zapLogger) Debugf(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

func (l *zapLogger) Infof(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

func (l *zapLogger) Warningf(format string, a ...any) {
	l.sugar.Warnf(format, a...)
}

func (l *zapLogger) Errorf(format string, a ...any) {
	l.sugar.Errorf(format, a...)
}
