//go:build !android

package taglog

import (
	"io"
	"testing"
)

func BenchmarkInfo(b *testing.B) {
	noop := func(string, string) error { return nil }
	logsNoop, _ := New(Config{Sink: noop})

	b.Run("NoopSink", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			logsNoop.Info("Sync", "connected")
		}
	})

	logsConsole, _ := New(Config{Output: io.Discard})

	b.Run("ConsoleSink", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			logsConsole.Info("Sync", "connected")
		}
	})
}
