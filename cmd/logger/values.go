package main

import (
	"strconv"
	"strings"

	"github.com/diepfote/golang-tools/logger"
)

// parseValue turns a shell word into an int64, float64 or bool when the
// typed value prints back as the same word, and leaves it a string
// otherwise. "007", "+5", "1e5" and "1.50" stay strings.
func parseValue(word string) any {
	if i, err := strconv.ParseInt(word, 10, 64); err == nil && strconv.FormatInt(i, 10) == word {
		return i
	}
	// keeps "NaN" and "Inf" as words
	if strings.ContainsAny(word, "0123456789") {
		if f, err := strconv.ParseFloat(word, 64); err == nil && logger.Describe(f) == word {
			return f
		}
	}
	switch word {
	case "true":
		return true
	case "false":
		return false
	}
	return word
}

func parseValues(words []string) []any {
	values := make([]any, len(words))
	for i, w := range words {
		values[i] = parseValue(w)
	}
	return values
}
