package pathbool

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so that callers skip building the record entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by the package. By default nothing is logged; pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: diagnostics of every boolean operation
//   - [slog.LevelWarn]: degraded results (open contours, depth or candidate limits hit)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger used by the package. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// LogValue implements slog.LogValuer.
func (d Diagnostics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("candidates", d.Candidates),
		slog.Int("splits", d.Splits),
		slog.Int("fragments", d.Fragments),
		slog.Int("contours", d.Contours),
		slog.Int("open", d.Open),
		slog.Bool("depthLimited", d.DepthLimited),
		slog.Bool("truncated", d.Truncated),
		slog.Duration("elapsed", d.Elapsed),
	)
}
