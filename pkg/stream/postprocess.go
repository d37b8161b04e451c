package stream

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var multiBlank = regexp.MustCompile(`\n{3,}`)

// Finalize normalizes whitespace, closes dangling code fences and truncates
// to maxChars runes. Returns the cleaned text and whether it was truncated.
func Finalize(text string, maxChars int) (string, bool) {
	out := strings.TrimSpace(text)
	out = multiBlank.ReplaceAllString(out, "\n\n")
	out = closeFences(out)

	if maxChars <= 0 || utf8.RuneCountInString(out) <= maxChars {
		return out, false
	}

	runes := []rune(out)
	out = strings.TrimSpace(string(runes[:maxChars-1])) + "…"
	// The cut may have reopened a fence.
	out = closeFences(out)
	return out, true
}

func closeFences(s string) string {
	if strings.Count(s, "```")%2 == 1 {
		return s + "\n```"
	}
	return s
}
