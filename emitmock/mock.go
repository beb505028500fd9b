package emitmock

import (
	taglog "github.com/taglog-project/taglog"
)

// Mock implements taglog.Emitter with call recording for tests. It never
// touches a real log destination.
type Mock struct {
	// Observer, when set, runs for every emission before it is recorded.
	Observer func(title, message string)

	// Calls records each emission observed by the mock in order.
	Calls []Call
}

// Call captures a single emission issued through the mock.
type Call struct {
	// Title is the source label of the record.
	Title string

	// Message is the body of the record.
	Message string
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// Observer, when set, runs for every emission before it is recorded.
	Observer func(title, message string)
}

// Ensure Mock satisfies the taglog.Emitter interface at compile time.
var _ taglog.Emitter = (*Mock)(nil)

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) *Mock {
	return &Mock{Observer: config.Observer}
}

// Info records the emission and runs the Observer when one is configured.
func (m *Mock) Info(title, message string) {
	if m.Observer != nil {
		m.Observer(title, message)
	}
	m.Calls = append(m.Calls, Call{Title: title, Message: message})
}

// Reset clears all recorded calls.
func (m *Mock) Reset() {
	m.Calls = nil
}
