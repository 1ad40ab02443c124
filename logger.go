package tileshuffle

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with encoding and decoding.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by tileshuffle.
// By default, tileshuffle produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// tileshuffle emits these records:
//   - [slog.LevelDebug] "tileshuffle: encode" after every encode, with the
//     image size (width, height) and grid (xSplit, ySplit).
//   - [slog.LevelDebug] "tileshuffle: decode" after every decode, with the
//     same attributes plus the number of greedy starts tried (candidates),
//     the winning start tile (start) and its total seam cost (cost).
//   - [slog.LevelInfo] "encoded" and "decoded" after EncodeFile, DecodeFile
//     or DecodeReportFile has written its output, with the input and output
//     paths. Nothing is logged for a failed call.
//
// Errors are returned, never logged.
//
// Example:
//
//	tileshuffle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by tileshuffle.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
