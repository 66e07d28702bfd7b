package webeater

import "strings"

// NormalizeWhitespace collapses runs of whitespace within lines to single
// spaces and drops blank lines. Selector matches are judged "non-trivial"
// by whether their normalized text is non-empty.
func NormalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}
