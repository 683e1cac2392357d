package dropdown

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// TextProcessor transforms option text before it is stored in an owned buffer.
// It must map each line to exactly one line so option counts are preserved.
type TextProcessor func(string) string

// ProcessRTL rewrites every line of s so that runs of right-to-left
// characters appear in visual order. Left-to-right text is unchanged.
func ProcessRTL(s string) string {
	if !hasRTL(s) {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = visualLine(line)
	}
	return strings.Join(lines, "\n")
}

func visualLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	runStart := -1
	for i, r := range line {
		if isRTLRune(r) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			b.WriteString(bidi.ReverseString(line[runStart:i]))
			runStart = -1
		}
		b.WriteRune(r)
	}
	if runStart >= 0 {
		b.WriteString(bidi.ReverseString(line[runStart:]))
	}
	return b.String()
}

func hasRTL(s string) bool {
	for _, r := range s {
		if isRTLRune(r) {
			return true
		}
	}
	return false
}

func isRTLRune(r rune) bool {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.R, bidi.AL, bidi.NSM:
		return true
	}
	return false
}
