package dropdown

import (
	"io"
	"log/slog"
	"os"
)

// logLevel controls the level for dropdown logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// dropdownLogger is the logger for control transitions and recoverable failures.
var dropdownLogger = newLogger(os.Stderr)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetLogOutput redirects log records to w, keeping the current level.
func SetLogOutput(w io.Writer) {
	dropdownLogger = newLogger(w)
}
