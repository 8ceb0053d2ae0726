package logger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LocalizedError is an error with a description meant for display,
// separate from its Error text. An empty description counts as none.
type LocalizedError interface {
	error
	ErrorDescription() string
}

// Describe returns the text Log prints for v.
//
// Stringers and errors describe themselves. A float64 or float32 passed
// directly keeps a fractional part, so 3.0 prints as "3.0" rather than "3".
// Floats inside slices, maps or structs, and named float types, print
// with fmt's %v ([3 2.5], not [3.0 2.5]). Magnitudes from 1e-4 up to 1e21
// print in plain notation, so 1e16 is "10000000000000000.0".
func Describe(v any) string {
	switch x := v.(type) {
	case fmt.Stringer, error:
		return fmt.Sprint(x)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64, bitSize int) string {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, bitSize)
	// NaN, +Inf and exponents are left alone
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

// ErrorMessage resolves the text DebugError prints: the fallback for a nil
// error, the ErrorDescription of a LocalizedError, or else the error's own
// text.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if le, ok := err.(LocalizedError); ok {
		if d := errorDescription(le); d != "" {
			return d
		}
	}
	// fmt recovers from panicking Error methods, e.g. on typed nil pointers
	return fmt.Sprint(err)
}

func errorDescription(le LocalizedError) (d string) {
	defer func() {
		if recover() != nil {
			d = ""
		}
	}()
	return le.ErrorDescription()
}
