package shared

import "github.com/go-kure/kure/pkg/logger"

// LevelForVerbosity maps a repeated -v count to a logger.Level. The base
// level (no -v) is Warn; each occurrence steps down one level. logger.Level
// has no Trace tier, so three or more occurrences all resolve to the most
// verbose level available, Debug.
func LevelForVerbosity(count int) logger.Level {
	switch {
	case count <= 0:
		return logger.LevelWarn
	case count == 1:
		return logger.LevelInfo
	default:
		return logger.LevelDebug
	}
}

// NewLogger builds a default logger at the level LevelForVerbosity maps
// count to.
func NewLogger(count int) logger.Logger {
	opts := logger.DefaultOptions()
	opts.Level = LevelForVerbosity(count)
	return logger.New(opts)
}
