package nlp

import (
	"regexp"
	"strings"
)

// A line ends at a newline or at a period followed by two or more spaces
// (PDF extraction often glues header lines together that way).
var lineBreak = regexp.MustCompile(`\n|\. {2,}`)

// Lines splits raw (not cleaned) text into trimmed, non-empty lines and
// returns at most max of them. max <= 0 means no limit.
func Lines(raw string, max int) []string {
	var out []string
	for _, ln := range lineBreak.Split(raw, -1) {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, ln)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// Words splits a line on whitespace.
func Words(line string) []string {
	return strings.Fields(line)
}
