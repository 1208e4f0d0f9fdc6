package utils

import (
	"regexp"
	"strings"
)

var codeFence = regexp.MustCompile("(?s)```(?:json|ndjson|jsonl)?(.*?)```")

// CleanJSONResponse removes markdown code block markers a model may wrap its
// JSON answer in.
func CleanJSONResponse(response string) string {
	cleaned := codeFence.ReplaceAllString(response, "$1")
	return strings.TrimSpace(cleaned)
}
