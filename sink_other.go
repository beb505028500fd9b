//go:build !android

package taglog

import (
	"os"

	"github.com/gologme/log"
)

// platformSink returns the console sink: records are written to the
// configured output stream as "title: message" lines. The logger runs with
// an empty prefix and zero flags so the record is emitted verbatim, and it
// absorbs stream write errors, which keeps emission fire-and-forget even on
// a closed stream.
func platformSink(config Config) SinkFunc {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	logger := log.New(out, "", 0)
	logger.EnableLevel("info")

	return func(title, message string) error {
		logger.Infof("%s%s%s", title, separator, message)
		return nil
	}
}
