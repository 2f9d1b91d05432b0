package gen

import (
	"strconv"
	"strings"
)

// percentEscaper is immutable and safe for concurrent use.
var percentEscaper = strings.NewReplacer("%", "%%")

// EscapePercent doubles every '%' so the text survives printf-style
// formatting unchanged.
func EscapePercent(s string) string {
	return percentEscaper.Replace(s)
}

// EscapeCString escapes s for use between the quotes of a C string literal.
// It works on bytes: the common control characters, backslash and double quote
// get their short escapes, any other byte below 0x20 or from 0x7f up becomes a
// three-digit octal escape. '%' is left alone.
func EscapeCString(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := range len(s) {
		c := s[i]

		switch c {
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
		case '\v':
			b.WriteString(`\v`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			if c < ' ' || c >= 0o177 {
				writeOctal(&b, c)

				continue
			}

			b.WriteByte(c)
		}
	}

	return b.String()
}

func writeOctal(b *strings.Builder, c byte) {
	b.WriteByte('\\')

	digits := strconv.FormatUint(uint64(c), 8)
	for range 3 - len(digits) {
		b.WriteByte('0')
	}

	b.WriteString(digits)
}
