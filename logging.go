// Package logger is a process-wide logging facade. Lines are only emitted
// in debug configurations; in release configurations every call is a no-op.
//
//	logger.Warn("cache miss", key, attempt) // prints "<key> <attempt>"
//	logger.DebugError(err, "fetch failed")
//
// The configuration is fixed at startup from the `debug` build tag and the
// LOGGER_DEBUG environment variable, and can be overridden with SetEnabled.
package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// LogType records the intent of a call. All types are emitted the same way.
type LogType int

const (
	TypeError LogType = iota
	TypeWarn
	TypeDebug
)

func (t LogType) String() string {
	switch t {
	case TypeError:
		return "error"
	case TypeWarn:
		return "warn"
	case TypeDebug:
		return "debug"
	}
	return "LogType(" + strconv.Itoa(int(t)) + ")"
}

// ParseLogType is the inverse of LogType.String, ignoring case.
func ParseLogType(s string) (LogType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return TypeError, nil
	case "warn":
		return TypeWarn, nil
	case "debug":
		return TypeDebug, nil
	}
	return 0, fmt.Errorf("unknown log type %q", s)
}

// DefaultFallback is printed by DebugError for a nil error when the caller
// gives no fallback.
const DefaultFallback = "Unknown error"

// EnvDebug overrides the build configuration when set to a value accepted
// by strconv.ParseBool.
const EnvDebug = "LOGGER_DEBUG"

var (
	enabled atomic.Bool

	mu  sync.Mutex
	out io.Writer = os.Stdout
)

func init() {
	enabled.Store(enabledAtStartup(os.Getenv(EnvDebug)))
}

func enabledAtStartup(env string) bool {
	if env == "" {
		return debugBuild
	}
	on, err := strconv.ParseBool(env)
	if err != nil {
		return debugBuild
	}
	return on
}

// Enabled reports whether calls currently produce output.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled turns emission on or off for the whole process.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// SetOutput replaces the sink and returns the previous one. A nil writer
// restores os.Stdout.
func SetOutput(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stdout
	}
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func Error(message string, args ...any) {
	Log(TypeError, message, args...)
}

func Warn(message string, args ...any) {
	Log(TypeWarn, message, args...)
}

func Debug(message string, args ...any) {
	Log(TypeDebug, message, args...)
}

// DebugError prints a description of err, or the fallback when err is nil.
// Only the first fallback is used; without one DefaultFallback is printed.
func DebugError(err error, fallback ...string) {
	if !enabled.Load() {
		return
	}
	msg := DefaultFallback
	if len(fallback) > 0 {
		msg = fallback[0]
	}
	writeLine(ErrorMessage(err, msg))
}

// Log prints the auxiliary values joined by single spaces.
//
// The message is not part of the printed line. Callers that rely on it
// being shown must pass it as an argument as well.
func Log(t LogType, message string, args ...any) {
	if !enabled.Load() {
		return
	}
	writeLine(Compose(args...))
}

// Compose returns the line Log would print for args.
func Compose(args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = Describe(arg)
	}
	return strings.Join(parts, " ")
}

func writeLine(line string) {
	mu.Lock()
	defer mu.Unlock()
	// write errors are dropped, logging never fails
	io.WriteString(out, line+"\n")
}
