package taglog

import (
	"io"
)

// separator sits between the title and message in console output.
const separator = ": "

// SinkFunc delivers a single record to a log destination. Implementations
// report delivery failures through the returned error; the emitter discards
// it, but sinks keep the signature so tests can observe failure paths.
type SinkFunc func(title, message string) error

// Emitter emits informational log records to the platform destination.
type Emitter interface {
	// Info emits one record with title as the source label and message as
	// the body. Both are forwarded verbatim and never retained.
	Info(title, message string)
}

// Config controls how an Emitter instance reaches its destination.
type Config struct {
	// Output overrides the destination stream for the console variant.
	// Defaults to os.Stdout. Has no effect on Android, where records go
	// to logcat.
	Output io.Writer

	// Sink overrides the platform sink entirely. Useful in tests to
	// capture records or simulate destination failures.
	Sink SinkFunc
}

// Logs is the platform-backed Emitter implementation.
type Logs struct {
	sink SinkFunc
}

// Ensure Logs satisfies the Emitter interface at compile time.
var _ Emitter = (*Logs)(nil)

// New creates an Emitter with platform defaults and optional sink override.
// It never fails for any Config value.
func New(config Config) (*Logs, error) {
	sink := config.Sink
	if sink == nil {
		sink = platformSink(config)
	}

	return &Logs{sink: sink}, nil
}

// Info emits one informational record as a best-effort call. Delivery
// failures are swallowed so logging never disturbs caller control flow.
func (l *Logs) Info(title, message string) {
	if l == nil || l.sink == nil {
		return
	}
	_ = l.sink(title, message)
}

// std is the package default emitter, bound to the platform sink.
var std, _ = New(Config{})

// Info emits one informational record through the package default emitter.
func Info(title, message string) {
	std.Info(title, message)
}
