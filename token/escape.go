package token

import "strings"

// unescape decodes \n \t \\ \" inside a string literal's body. An unknown
// escape passes the backslash through literally, per spec §4.1 item 2.
// Narrowed from the teacher's larger ARM escape table (parser/escape.go)
// to the four sequences spec.md names.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' || i == len(runes)-1 {
			b.WriteRune(c)
			continue
		}
		next := runes[i+1]
		switch next {
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		default:
			// Unknown escape: keep the backslash literally.
			b.WriteRune(c)
			b.WriteRune(next)
			i++
			continue
		}
		i++
	}
	return b.String()
}
