/*
Package txtlog is a minimal dual-sink logger for long-running processes, such as training jobs,
which need a durable human-readable record plus live console feedback.

Package key features are:

 * Each logger owns one log file named {base}_{YYYYMMDD_HHMMSS}.{ext}, created in append mode
 * Every record is synced to the storage device before the logging call returns
 * Optional console mirror with colored level tags (INFO green, WARNING yellow, ERROR red)
 * Print-style variadic arguments of any type, joined with single spaces
 * Logging never fails: after the file is closed or broken, file records are silently dropped
 * Exit registry to close loggers that were never closed explicitly
 * Concurrency safe, records are never interleaved

Records in the log file have the following format:

 [2024-05-01 12:00:00] [INFO] epoch 1 loss 0.25

# Basic usage

 import "github.com/r-che/txtlog"

 func main() {
     // Close all loggers on return from main and on SIGINT/SIGTERM
     defer txtlog.Shutdown()
     txtlog.CloseOnSignal()

     l, err := txtlog.New("logs")  // logs/train_20240501_120000.txt
     if err != nil {
         fmt.Fprintln(os.Stderr, err)
         os.Exit(1)
     }

     l.Info("epoch", 1, "loss", 0.25)
     l.Warning("learning rate is too high:", 0.5)
     l.Error("cannot save checkpoint:", err)
 }

# Configuration

Settings can be read from a configuration file with [LoadConfig], which uses the keys
log_dir, log_filename, log_extension and log_to_console of a [github.com/spf13/viper] instance.

# Important notes

 * Go does not run anything at process exit, call [Shutdown] (or [Exit] instead of os.Exit)
   to close loggers which were not closed with [Logger.Close]
 * Log levels are labels only, there is no filtering
*/
package txtlog
