/*
Package taglog emits informational log records labeled with a short title,
routing them to the platform-appropriate destination.

On Android builds the record is forwarded to logcat with the title as the log
tag. On every other platform the record is written to a console stream as
"title: message" followed by a newline. The variant is selected at build time;
callers use the same API on both.

Emission is best-effort and returns nothing: a failed or closed destination is
swallowed rather than surfaced, so diagnostic logging can never disturb caller
control flow.

Typical usage is the package-level helper:

	taglog.Info("Sync", "connected")

Hosts that prefer injection construct an Emitter with New. Zero-value Config
options fall back to the platform default; tests can override the sink
function to capture records without touching a real destination:

	logs, _ := taglog.New(taglog.Config{
	        Sink: func(title, message string) error {
	                // assert on title/message here
	                return nil
	        },
	})
	logs.Info("Sync", "connected")
*/
package taglog
