package pointfield

import (
	"fmt"
	"io"
	"os"
)

// debugEnabled mirrors the most recent SetDebugMode call. pointfield is
// single-threaded, so a plain bool is enough.
var debugEnabled bool

// debugOut is where debug lines go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, mask evaluation
// failures, lattice rebuilds, state transitions and per-frame step timings
// are logged to stderr.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// DebugMode reports whether debug logging is enabled.
func DebugMode() bool {
	return debugEnabled
}

// debugLogf prints a "[pointfield]" prefixed line when debug mode is on.
func debugLogf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[pointfield] "+format+"\n", args...)
}

// warnf prints a "[pointfield] warning:" line regardless of debug mode. Used
// for failures the host should hear about even in release builds.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[pointfield] warning: "+format+"\n", args...)
}
