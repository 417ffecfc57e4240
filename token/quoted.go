package token

import (
	"unicode"
	"unicode/utf8"
)

// Quote returns the canonical double-quoted form of v. Only '"' and
// '\' need escaping; everything else passes through verbatim.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"', '\\':
			d = append(d, '\\', v[i])
		default:
			d = append(d, v[i])
		}
	}
	d = append(d, '"')
	return string(d)
}

// quoted returns the length of the quoted literal at the start of d,
// including both quote characters. d[0] must be '"' or '\''. A
// backslash escapes the character after it.
func quoted(d []byte) (int, error) {
	qc := d[0]
	i := 1
	for i < len(d) {
		switch d[i] {
		case '\\':
			i += 2
		case qc:
			return i + 1, nil
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

// Unquote decodes a complete quoted literal, validating that the
// closing quote terminates the input.
func Unquote(v string) (string, error) {
	d := []byte(v)
	if len(d) == 0 || (d[0] != '"' && d[0] != '\'') {
		return "", ErrUnterminated
	}
	n, err := quoted(d)
	if err != nil {
		return "", err
	}
	if n != len(d) {
		return "", ErrChar
	}
	return QuotedToString(d), nil
}

// QuotedToString decodes the raw bytes of a string token, quotes
// included. Escapes are literal: a backslash drops and the following
// character is kept as-is.
func QuotedToString(d []byte) string {
	b := make([]byte, 0, len(d)-2)
	i := 1
	for i < len(d)-1 {
		if d[i] == '\\' && i+1 < len(d)-1 {
			i++
		}
		b = append(b, d[i])
		i++
	}
	return string(b)
}

// IsIdent reports whether v is a valid bare key: a letter or
// underscore followed by letters, digits and underscores.
func IsIdent(v string) bool {
	if v == "" {
		return false
	}
	for i, r := range v {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func identStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func identPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// identSpan returns the length of the identifier at the start of d, or
// 0 when d does not start with one.
func identSpan(d []byte) int {
	r, sz := utf8.DecodeRune(d)
	if !identStart(r) {
		return 0
	}
	i := sz
	for i < len(d) {
		r, sz = utf8.DecodeRune(d[i:])
		if !identPart(r) {
			break
		}
		i += sz
	}
	return i
}
