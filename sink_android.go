//go:build android

package taglog

/*
#cgo LDFLAGS: -llog
#include <stdlib.h>
#include <android/log.h>

// The format string is a literal "%s" so the message is treated as an opaque
// string and never interpreted for further format directives.
static void taglog_info(const char *tag, const char *msg) {
	__android_log_print(ANDROID_LOG_INFO, tag, "%s", msg);
}
*/
import "C"

import "unsafe"

// platformSink returns the logcat sink: records are forwarded to the Android
// log at informational severity with the title as tag. Config.Output has no
// effect on this variant.
func platformSink(config Config) SinkFunc {
	return func(title, message string) error {
		ctag := C.CString(title)
		cmsg := C.CString(message)
		C.taglog_info(ctag, cmsg)
		C.free(unsafe.Pointer(ctag))
		C.free(unsafe.Pointer(cmsg))
		return nil
	}
}
