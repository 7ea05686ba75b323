package txtlog

import (
	"errors"
	"time"
)

type logFunction func(*Logger, ...any)
type logCall struct {
	f		logFunction
	args	[]any
}

// Fixed time of all test records
var stubTime = time.Date(2024, time.May, 1, 12, 30, 45, 0, time.Local)

const (
	stubStamp		=	"[2024-05-01 12:30:45]"
	stubFileStamp	=	"20240501_123045"
	// Replaced by the absolute log file path in expected lines
	pathMark		=	"%PATH%"

	green	=	"\x1b[92m"
	yellow	=	"\x1b[93m"
	red		=	"\x1b[91m"
	reset	=	"\x1b[0m"
)

type stubStringer struct{}
func (stubStringer) String() string { return "stringer" }

var loggingTests = map[string]struct {
	console		bool
	inputs		[]logCall
	expFile		[]string
	expConsole	[]string
}{
	"00-all-levels": {
		console:	true,
		inputs:	[]logCall {
			{f: (*Logger).Info, args: []any{"Test #0 - INFO log message"} },
			{f: (*Logger).Warning, args: []any{"Test #1 - WARNING log message"} },
			{f: (*Logger).Error, args: []any{"Test #2 - ERROR log message (It's OK - this is testing error messages)"} },
		},
		expFile: []string {
			stubStamp + ` [INFO] log file created: ` + pathMark,
			stubStamp + ` [INFO] Test #0 - INFO log message`,
			stubStamp + ` [WARNING] Test #1 - WARNING log message`,
			stubStamp + ` [ERROR] Test #2 - ERROR log message (It's OK - this is testing error messages)`,
		},
		expConsole: []string {
			stubStamp + ` ` + green + `[INFO]` + reset + ` log file created: ` + pathMark,
			stubStamp + ` ` + green + `[INFO]` + reset + ` Test #0 - INFO log message`,
			stubStamp + ` ` + yellow + `[WARNING]` + reset + ` Test #1 - WARNING log message`,
			stubStamp + ` ` + red + `[ERROR]` + reset + ` Test #2 - ERROR log message (It's OK - this is testing error messages)`,
			`closing log file: ` + pathMark,
		},
	},
	"01-without-console": {
		console:	false,
		inputs:	[]logCall {
			{f: (*Logger).Info, args: []any{"Test #0 - INFO log message"} },
			{f: (*Logger).Warning, args: []any{"Test #1 - WARNING log message"} },
			{f: (*Logger).Error, args: []any{"Test #2 - ERROR log message (It's OK - this is testing error messages)"} },
		},
		expFile: []string {
			stubStamp + ` [INFO] log file created: ` + pathMark,
			stubStamp + ` [INFO] Test #0 - INFO log message`,
			stubStamp + ` [WARNING] Test #1 - WARNING log message`,
			stubStamp + ` [ERROR] Test #2 - ERROR log message (It's OK - this is testing error messages)`,
		},
		expConsole: []string {
			// Close notice is printed regardless of the console flag
			`closing log file: ` + pathMark,
		},
	},
	"02-variadic": {
		console:	true,
		inputs:	[]logCall {
			{f: (*Logger).Info, args: []any{"a", 1, 2.5} },
			{f: (*Logger).Warning, args: []any{"epoch", 3, "of", 10, true} },
			{f: (*Logger).Error, args: []any{"failed:", errors.New("disk full"), stubStringer{}} },
			{f: (*Logger).Info, args: []any{} },
		},
		expFile: []string {
			stubStamp + ` [INFO] log file created: ` + pathMark,
			stubStamp + ` [INFO] a 1 2.5`,
			stubStamp + ` [WARNING] epoch 3 of 10 true`,
			stubStamp + ` [ERROR] failed: disk full stringer`,
			stubStamp + ` [INFO] `,
		},
		expConsole: []string {
			stubStamp + ` ` + green + `[INFO]` + reset + ` log file created: ` + pathMark,
			stubStamp + ` ` + green + `[INFO]` + reset + ` a 1 2.5`,
			stubStamp + ` ` + yellow + `[WARNING]` + reset + ` epoch 3 of 10 true`,
			stubStamp + ` ` + red + `[ERROR]` + reset + ` failed: disk full stringer`,
			stubStamp + ` ` + green + `[INFO]` + reset + ` `,
			`closing log file: ` + pathMark,
		},
	},
	"03-utf8-message": {
		console:	false,
		inputs:	[]logCall {
			{f: (*Logger).Info, args: []any{"UTF-8 текст", "日本語"} },
		},
		expFile: []string {
			stubStamp + ` [INFO] log file created: ` + pathMark,
			stubStamp + ` [INFO] UTF-8 текст 日本語`,
		},
		expConsole: []string {
			`closing log file: ` + pathMark,
		},
	},
}

var statisticTests = []struct {
	f		logFunction
	level	Level
	args	[]any
}{
	{f: (*Logger).Info, level: LevelInfo, args: []any{"Statistic test - INFO"} },
	{f: (*Logger).Warning, level: LevelWarning, args: []any{"Statistic test - WARNING"} },
	{f: (*Logger).Error, level: LevelError, args: []any{"Statistic test - ERROR (It's OK - this is testing error messages)"} },
}
