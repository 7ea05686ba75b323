package txtlog

import (
	"io"
	"time"
)

// Option configures a Logger created by New.
type Option func(*Logger)

// WithBaseName sets the base name of the log file. The empty string switches to
// timestamp-only names.
func WithBaseName(name string) Option {
	return func(l *Logger) {
		l.baseName = name
	}
}

// WithExtension sets the log file extension, without the leading dot.
func WithExtension(ext string) Option {
	return func(l *Logger) {
		l.ext = ext
	}
}

// WithConsole enables or disables the console mirror. The file is always written.
func WithConsole(enabled bool) Option {
	return func(l *Logger) {
		l.console = enabled
	}
}

// WithOutput replaces the console writer, which is standard output by default.
// The close notice is written here too.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithClock replaces time.Now for file naming and record timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// WithoutExitHook skips registration in the exit registry, the caller must call Close.
func WithoutExitHook() Option {
	return func(l *Logger) {
		l.noExitHook = true
	}
}
