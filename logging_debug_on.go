//go:build debug
// +build debug

package logger

const debugBuild = true
