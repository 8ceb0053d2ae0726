//go:build !debug
// +build !debug

package logger

// release builds stay silent unless LOGGER_DEBUG says otherwise
const debugBuild = false
