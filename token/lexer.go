package token

import (
	"os"
	"strconv"
	"strings"
)

// Lex reads the file at path and tokenizes it into an ordered list of
// token-lines, per spec §4.1. Grounded on parser/lexer.go's scan shape,
// narrowed to a flat line-oriented scan (no macro/include preprocessing —
// this core has none).
func Lex(path string) ([]Line, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newOpenFileError(path)
		}
		return nil, newReadFileError(path)
	}

	var lines []Line
	for lineNo, raw := range strings.Split(string(data), "\n") {
		line, err := lexLine(path, lineNo+1, raw)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// lexLine tokenizes a single source line per spec §4.1.
func lexLine(filename string, lineNo int, raw string) (Line, error) {
	if strings.HasPrefix(raw, "#") {
		return nil, nil
	}
	if idx := strings.IndexByte(raw, '#'); idx >= 0 {
		raw = raw[:idx]
	}

	fields := splitFields(raw)
	line := make(Line, 0, len(fields))
	pos := Position{Filename: filename, Line: lineNo}

	for i, field := range fields {
		tok, err := classify(field, i == 0, pos)
		if err != nil {
			return nil, err
		}
		line = append(line, tok)
	}
	return line, nil
}

// splitFields separates a line on ASCII whitespace or commas, except
// inside a double-quoted string — a scanner that toggles an "inside
// string" flag on each '"' and suppresses separators while set, per
// spec §4.1. Enclosing quotes are retained in the raw fragment.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	insideString := false

	flush := func() {
		if cur.Len() > 0 {
			fields = append(fields, cur.String())
			cur.Reset()
		}
	}

	for _, c := range line {
		switch {
		case c == '"':
			insideString = !insideString
			cur.WriteRune(c)
		case !insideString && (c == ',' || isASCIISpace(c)):
			flush()
		default:
			cur.WriteRune(c)
		}
	}
	flush()
	return fields
}

func isASCIISpace(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// classify implements the first-match-wins token classification order of
// spec §4.1.
func classify(field string, isFirst bool, pos Position) (Token, error) {
	switch {
	case strings.HasPrefix(field, "."):
		kind, ok := directiveNames[field]
		if !ok {
			return Token{}, newUnknownDirective(pos, field)
		}
		return Token{Kind: KindDirective, Directive: kind, Pos: pos}, nil

	case strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) && len(field) >= 2:
		body := field[1 : len(field)-1]
		return Token{Kind: KindText, Text: unescape(body), Pos: pos}, nil

	case strings.HasPrefix(field, "0x") && isHexNumber(field[2:]):
		v, _ := strconv.ParseInt(field[2:], 16, 64)
		return Token{Kind: KindNumber, Number: int32(v), Pos: pos}, nil

	case isDecimalNumber(field):
		v, _ := strconv.ParseInt(field, 10, 64)
		return Token{Kind: KindNumber, Number: int32(v), Pos: pos}, nil

	case strings.HasPrefix(field, "$"):
		return Token{Kind: KindRegister, Name: field, Pos: pos}, nil

	case strings.HasSuffix(field, ":"):
		return Token{Kind: KindLabel, Name: strings.TrimSuffix(field, ":"), Decl: true, Pos: pos}, nil

	case isFirst:
		return Token{Kind: KindOperator, Name: field, Pos: pos}, nil

	default:
		return Token{Kind: KindLabel, Name: field, Decl: false, Pos: pos}, nil
	}
}

// isHexNumber reports whether s (the body after "0x") is a non-negative hex
// magnitude that fits in a signed 32-bit value, matching
// original_source/src/sim/tokenizer.rs's i32::from_str_radix(&token[2..],
// 16): that parse treats the body as a magnitude and fails once it exceeds
// i32::MAX (0x7FFFFFFF), letting the token fall through to the next
// classification case rather than wrapping into a negative Number.
func isHexNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	return err == nil && v <= 0x7FFFFFFF
}

// isDecimalNumber reports whether field parses as a signed 32-bit decimal
// literal, per spec §4.1 item 4.
func isDecimalNumber(field string) bool {
	if field == "" {
		return false
	}
	_, err := strconv.ParseInt(field, 10, 32)
	return err == nil
}
