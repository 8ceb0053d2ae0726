package main

import (
	"fmt"
	"io"
	"os"
)

// openScript opens path for reading. An empty path or "-" reads from
// stdin, and /dev/fd/xx works like any other file.
func openScript(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file error: %w", err)
	}
	return file, nil
}
