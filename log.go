package glaze

import (
	"log/slog"
	"os"
)

// glazeLogLevel controls the log level for toolkit logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var glazeLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the toolkit.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		glazeLogLevel.Set(slog.LevelDebug)
	} else {
		glazeLogLevel.Set(slog.LevelInfo)
	}
}

// eventLogger reports dispatch-boundary failures and debug traces.
var eventLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: glazeLogLevel}))
