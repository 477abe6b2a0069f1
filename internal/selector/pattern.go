package selector

import "strings"

// MaxPatternLength bounds the escaped text embedded in a regex selector.
const MaxPatternLength = 30

// EscapeRegex escapes s for a JavaScript regex literal and truncates the
// result to at most max characters. Truncation happens between escape
// sequences, never inside one.
func EscapeRegex(s string, max int) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		tok := regexToken(r)
		width := len([]rune(tok))
		if n+width > max {
			break
		}
		b.WriteString(tok)
		n += width
	}
	return b.String()
}

func regexToken(r rune) string {
	switch r {
	case '.', '*', '+', '?', '^', '$', '{', '}', '(', ')', '|', '[', ']', '\\', '/':
		return `\` + string(r)
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\u2028':
		return `\u2028`
	case '\u2029':
		return `\u2029`
	default:
		return string(r)
	}
}

// Pattern returns a case-insensitive regex literal matching text.
func Pattern(text string) string {
	return "/" + EscapeRegex(text, MaxPatternLength) + "/i"
}
