package txtlog

import "sync/atomic"

//
// Default logger object
//

//nolint:gochecknoglobals // Pointer to the default logger
var logger atomic.Pointer[Logger]

// Open creates a new logger with [New] and makes it the default one used by the
// package-level functions. The previous default logger, if any, is closed.
func Open(dir string, opts ...Option) error {
	l, err := New(dir, opts...)
	if err != nil {
		return err
	}

	if prev := logger.Swap(l); prev != nil {
		_ = prev.Close()
	}

	return nil
}

// Default returns the default logger or nil if Open was not called.
func Default() *Logger {
	return logger.Load()
}

// Info writes an INFO record to the default logger. It does nothing before Open.
func Info(v ...any) {
	if l := logger.Load(); l != nil {
		l.Info(v...)
	}
}

// Warning writes a WARNING record to the default logger. It does nothing before Open.
func Warning(v ...any) {
	if l := logger.Load(); l != nil {
		l.Warning(v...)
	}
}

// Error writes an ERROR record to the default logger. It does nothing before Open.
func Error(v ...any) {
	if l := logger.Load(); l != nil {
		l.Error(v...)
	}
}

// Close calls [Logger.Close] on the default logger.
func Close() error {
	if l := logger.Load(); l != nil {
		return l.Close()
	}
	return nil
}

// LogPath returns the file path of the default logger, or the empty string before Open.
func LogPath() string {
	if l := logger.Load(); l != nil {
		return l.LogPath()
	}
	return ""
}
