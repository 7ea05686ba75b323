package txtlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

// Defaults
const (
	DefaultBaseName		=	"train"
	DefaultExtension	=	"txt"

	defaultDirMode		=	0o755
	defaultPermMode		=	0o644
)

//
// Public types
//

// StatFunc defines the interface for error and warning statistics functions.
// The function gets the message exactly as it was written to the log, without
// timestamp and level. It runs while the logger is locked, so calls of one logger's
// handlers never overlap, and must not call the logger.
type StatFunc func(msg string)

// DropFunc is called for every record that was not written to the log file, because the
// file was already closed or the write failed. The console copy, if enabled, is not affected.
// It runs while the logger is locked and must not call the logger.
type DropFunc func(level Level, msg string)

// A Logger writes timestamped records to its own log file and, optionally, mirrors them
// to the console with colored level tags. Every record is synced to the storage device
// before the logging call returns. A Logger can be used simultaneously from multiple
// goroutines; it guarantees that records are never interleaved.
type Logger struct {
	mu			sync.Mutex
	file		*os.File
	closed		bool
	path		string
	baseName	string
	ext			string
	console		bool
	out			io.Writer
	now			func() time.Time

	noExitHook	bool
	exitHookID	uint64

	dropped		atomic.Uint64
	dropFunc	DropFunc

	// Statistic functions
	errEventStat StatFunc
	wrnEventStat StatFunc
}

// New creates the dir directory if needed, opens the log file named
// {baseName}_{YYYYMMDD_HHMMSS}.{ext} in it and writes the first INFO record with
// the absolute file path. By default the base name is "train", the extension is "txt"
// and records are mirrored to standard output.
//
// The returned logger is registered in the exit registry (see [Shutdown]), so it will be
// closed by Shutdown, Exit or CloseOnSignal even if Close is never called.
//
// Only resource acquisition can fail: the error is a *DirectoryCreationError or
// a *FileOpenError.
func New(dir string, opts ...Option) (*Logger, error) {
	l := &Logger{
		baseName:	DefaultBaseName,
		ext:		DefaultExtension,
		console:	true,
		out:		color.Output,
		now:		time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return nil, newDirectoryCreationError(dir, err)
	}

	name := filepath.Join(dir, logFileName(l.baseName, l.ext, l.now()))
	path, err := filepath.Abs(name)
	if err != nil {
		return nil, newFileOpenError(name, err)
	}
	l.path = path

	fd, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultPermMode)
	if err != nil {
		return nil, newFileOpenError(l.path, err)
	}
	l.file = fd

	if !l.noExitHook {
		l.exitHookID = registerExitHook(l.exitHook)
	}

	l.Info("log file created:", l.path)

	return l, nil
}

// NewFromConfig creates a Logger from cfg. Options are applied after the configuration values.
func NewFromConfig(cfg Config, opts ...Option) (*Logger, error) {
	return New(cfg.LogDir, append(cfg.options(), opts...)...)
}

// Info writes an INFO record.
func (l *Logger) Info(v ...any) {
	l.write(LevelInfo, v...)
}

// Warning writes a WARNING record.
// It also calls the warning statistics handler, if previously set with [Logger.SetStatFuncs].
func (l *Logger) Warning(v ...any) {
	l.write(LevelWarning, v...)
}

// Error writes an ERROR record.
// It also calls the error statistics handler, if previously set with [Logger.SetStatFuncs].
func (l *Logger) Error(v ...any) {
	l.write(LevelError, v...)
}

// SetStatFuncs sets the ef (for errors) and wf (for warnings) message statistics handlers.
func (l *Logger) SetStatFuncs(ef, wf StatFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errEventStat = ef
	l.wrnEventStat = wf
}

// SetDropFunc sets the handler of records that did not reach the log file.
func (l *Logger) SetDropFunc(f DropFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.dropFunc = f
}

// Close prints a notice with the log file path to the console writer and closes the file.
// The notice is printed even if the console mirror is disabled. Calling Close on a closed
// logger does nothing and returns nil.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	fmt.Fprintf(l.out, "closing log file: %s\n", l.path)

	return l.release()
}

// LogPath returns the absolute path of the log file. It stays valid after Close.
func (l *Logger) LogPath() string {
	return l.path
}

// Closed reports whether the log file was released.
func (l *Logger) Closed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.closed
}

// ConsoleEnabled reports whether records are mirrored to the console.
func (l *Logger) ConsoleEnabled() bool {
	return l.console
}

// Dropped returns the number of records that were not written to the log file.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// exitHook is registered in the exit registry
func (l *Logger) exitHook() {
	_ = l.Close()
}

// write formats and writes the record to all enabled sinks, then calls
// the statistics function of the level, if any
func (l *Logger) write(level Level, v ...any) {
	msg := joinArgs(v...)

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now()

	if !l.writeFile(fileRecord(ts, level, msg)) {
		l.dropped.Add(1)
		if l.dropFunc != nil {
			l.dropFunc(level, msg)
		}
	}

	if l.console {
		// Console errors are ignored, there is nowhere to report them
		_, _ = io.WriteString(l.out, consoleRecord(ts, level, msg))
	}

	switch {
	case level == LevelWarning && l.wrnEventStat != nil:
		l.wrnEventStat(msg)
	case level == LevelError && l.errEventStat != nil:
		l.errEventStat(msg)
	}
}

// writeFile appends the record and syncs the file, returns false if the record
// did not reach the file. Must be called with l.mu held.
func (l *Logger) writeFile(record string) bool {
	if l.closed {
		return false
	}

	_, err := l.file.WriteString(record)
	if err == nil {
		err = l.file.Sync()
	}
	if err == nil {
		return true
	}

	// Stop using the broken file, further records are dropped silently
	fmt.Fprintf(l.out, "log file %s disabled after write error: %v\n", l.path, err)
	_ = l.release()

	return false
}

// release closes the file and marks the logger closed. Must be called with l.mu held.
func (l *Logger) release() error {
	l.closed = true

	if l.exitHookID != 0 {
		unregisterExitHook(l.exitHookID)
		l.exitHookID = 0
	}

	if err := l.file.Close(); err != nil {
		return &OpError{Op: "close log file", Path: l.path, Err: err}
	}

	return nil
}
