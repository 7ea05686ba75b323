package txtlog

import (
	"fmt"
	"strings"
	"time"
)

// Time layouts
const (
	fileStampLayout		=	"20060102_150405"
	recordStampLayout	=	"2006-01-02 15:04:05"
)

// joinArgs renders each value with its default format and joins them with single spaces.
// Unlike fmt.Sprint, spaces are also inserted between adjacent strings.
func joinArgs(v ...any) string {
	parts := make([]string, len(v))
	for i, arg := range v {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, " ")
}

// fileRecord returns the plain text line written to the log file, including the trailing newline
func fileRecord(ts time.Time, level Level, msg string) string {
	return "[" + ts.Format(recordStampLayout) + "] [" + level.String() + "] " + msg + "\n"
}

// consoleRecord returns the colored console line, including the trailing newline
func consoleRecord(ts time.Time, level Level, msg string) string {
	tag := "[" + level.String() + "]"
	if c := levelColor(level); c != nil {
		tag = c.Sprint(tag)
	}
	return "[" + ts.Format(recordStampLayout) + "] " + tag + " " + msg + "\n"
}

// logFileName composes the timestamped log file name
func logFileName(baseName, ext string, ts time.Time) string {
	stamp := ts.Format(fileStampLayout)
	if baseName == "" {
		return stamp + "." + ext
	}
	return baseName + "_" + stamp + "." + ext
}
