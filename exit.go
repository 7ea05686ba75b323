package txtlog

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Exit registry. Go runs nothing at process exit, so loggers register their Close here
// and the application triggers the hooks with Shutdown, Exit or CloseOnSignal.

type exitHook struct {
	id	uint64
	fn	func()
}

//nolint:gochecknoglobals // process-wide registry
var exitReg = struct {
	mu		sync.Mutex
	nextID	uint64
	hooks	[]exitHook
}{}

//nolint:gochecknoglobals // signal watcher is installed once per process
var signalOnce sync.Once

// osExit is replaced in tests
//nolint:gochecknoglobals
var osExit = os.Exit

// registerExitHook adds fn to the registry and returns the id to unregister it
func registerExitHook(fn func()) uint64 {
	exitReg.mu.Lock()
	defer exitReg.mu.Unlock()

	exitReg.nextID++
	exitReg.hooks = append(exitReg.hooks, exitHook{id: exitReg.nextID, fn: fn})

	return exitReg.nextID
}

func unregisterExitHook(id uint64) {
	exitReg.mu.Lock()
	defer exitReg.mu.Unlock()

	for i, h := range exitReg.hooks {
		if h.id == id {
			exitReg.hooks = append(exitReg.hooks[:i], exitReg.hooks[i+1:]...)
			return
		}
	}
}

// Shutdown closes every logger that is still open, the most recently created first.
// Each hook runs at most once, so calling Shutdown again is harmless. The usual place
// is a deferred call at the top of main:
//
//	defer txtlog.Shutdown()
func Shutdown() {
	// Take the hooks out of the registry before running them,
	// Close unregisters itself and must not deadlock
	exitReg.mu.Lock()
	hooks := exitReg.hooks
	exitReg.hooks = nil
	exitReg.mu.Unlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i].fn()
	}
}

// Exit runs Shutdown and then terminates the program with the given status code.
// Use it instead of os.Exit, which skips deferred calls.
func Exit(code int) {
	Shutdown()
	osExit(code)
}

// CloseOnSignal starts a goroutine that runs Shutdown and exits the process when one of
// sigs is received. Without arguments, os.Interrupt and SIGTERM are watched. Only the
// first call has an effect.
func CloseOnSignal(sigs ...os.Signal) {
	signalOnce.Do(func() {
		if len(sigs) == 0 {
			sigs = []os.Signal{os.Interrupt, syscall.SIGTERM}
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, sigs...)

		go func() {
			sig := <-sigCh
			signal.Stop(sigCh)
			Exit(signalExitCode(sig))
		}()
	})
}

// signalExitCode follows the shell convention of 128 + signal number
func signalExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
