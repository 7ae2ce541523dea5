package calculation

// Logger receives diagnostic output from the projection engine.
// The engine never depends on what a Logger does; the default discards everything.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Warnf(string, ...any)  {}
