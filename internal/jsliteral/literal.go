// Package jsliteral renders Go values as JavaScript source literals.
package jsliteral

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BRIKEV/twd-mcp/internal/model"
)

const indentUnit = "  "

var singleQuoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// EscapeSingle escapes s for use between single quotes.
func EscapeSingle(s string) string {
	return singleQuoteReplacer.Replace(s)
}

// SingleQuoted returns s as a single-quoted string literal.
func SingleQuoted(s string) string {
	return "'" + EscapeSingle(s) + "'"
}

// Quote returns s as a double-quoted string literal, escaped the way
// JSON.stringify escapes strings.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

const hexDigits = "0123456789abcdef"

// Comment flattens s onto one line so it can follow a // comment marker.
func Comment(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
	}), " ")
}

// Pretty renders v the way JSON.stringify(v, null, 2) does. An undefined
// Value renders as null.
func Pretty(v model.Value) string {
	var b strings.Builder
	writePretty(&b, v, "")
	return b.String()
}

func writePretty(b *strings.Builder, v model.Value, indent string) {
	switch v.Kind() {
	case model.KindBool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case model.KindNumber:
		b.WriteString(FormatNumber(v.Text()))
	case model.KindString:
		b.WriteString(Quote(v.Text()))
	case model.KindArray:
		items := v.Items()
		if len(items) == 0 {
			b.WriteString("[]")
			return
		}
		inner := indent + indentUnit
		b.WriteString("[\n")
		for i, item := range items {
			if i > 0 {
				b.WriteString(",\n")
			}
			b.WriteString(inner)
			writePretty(b, item, inner)
		}
		b.WriteString("\n" + indent + "]")
	case model.KindObject:
		members := v.Members()
		if len(members) == 0 {
			b.WriteString("{}")
			return
		}
		inner := indent + indentUnit
		b.WriteString("{\n")
		for i, m := range members {
			if i > 0 {
				b.WriteString(",\n")
			}
			b.WriteString(inner + Quote(m.Key) + ": ")
			writePretty(b, m.Value, inner)
		}
		b.WriteString("\n" + indent + "}")
	default:
		b.WriteString("null")
	}
}

// FormatNumber renders decimal text the way JavaScript prints the number it
// denotes: no trailing zeros, exponent form outside [1e-6, 1e21).
func FormatNumber(text string) string {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if math.IsInf(f, 0) {
			return "null"
		}
		return text
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
