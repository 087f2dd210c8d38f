// Package logx provides the detector's structured logging, built on
// go.uber.org/zap the way gzh-cli's monitoring/webhook subsystems do.
package logx

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once   sync.Once
	global *zap.Logger
)

// Global returns the process-wide logger, built lazily from production
// defaults on first use.
func Global() *zap.Logger {
	once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		global = l
	})
	return global
}

// SetGlobal overrides the process-wide logger, used by cmd/ to install
// the logger built from the --verbose/--debug/--quiet flags.
func SetGlobal(l *zap.Logger) {
	once.Do(func() {})
	global = l
}

// Named returns a child logger scoped to a pipeline component, e.g.
// logx.Named("scanner") or logx.Named("service.build").
func Named(component string) *zap.Logger {
	return Global().Named(component)
}
