package token

import (
	"fmt"
	"unicode/utf8"
)

// Tokenizer produces the token sequence of a document lazily. It scans
// forward only; to restart from the beginning, construct a new
// Tokenizer over the same bytes.
type Tokenizer struct {
	doc    []byte
	posDoc *PosDoc
	i      int
}

func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{
		doc:    src,
		posDoc: NewPosDoc(src),
	}
}

// Next returns the next token. Whitespace between tokens carries no
// meaning and is skipped. At the end of input Next returns a TEOF
// token, repeatedly if called again.
func (tz *Tokenizer) Next() (Token, error) {
	d, n := tz.doc, len(tz.doc)
	for tz.i < n && whitespace(d[tz.i]) {
		tz.i++
	}
	pos := tz.posDoc.Pos(tz.i)
	if tz.i >= n {
		return Token{Type: TEOF, Pos: pos}, nil
	}
	c := d[tz.i]
	if t, ok := punct(c); ok {
		tok := Token{Type: t, Pos: pos, Bytes: d[tz.i : tz.i+1]}
		tz.i++
		return tok, nil
	}
	switch {
	case c == '"' || c == '\'':
		sz, err := quoted(d[tz.i:])
		if err != nil {
			return Token{}, NewError(err, pos)
		}
		return tz.emit(TString, sz, pos), nil
	case c == '-' || asciiDigit(c):
		sz, err := number(d[tz.i:])
		if err != nil {
			return Token{}, NewError(err, pos)
		}
		return tz.emit(TNumber, sz, pos), nil
	default:
		if sz := identSpan(d[tz.i:]); sz > 0 {
			return tz.emit(TIdent, sz, pos), nil
		}
		r, _ := utf8.DecodeRune(d[tz.i:])
		return Token{}, NewError(fmt.Errorf("%w %q", ErrChar, r), pos)
	}
}

func (tz *Tokenizer) emit(t TokenType, sz int, pos *Pos) Token {
	tok := Token{Type: t, Pos: pos, Bytes: tz.doc[tz.i : tz.i+sz]}
	tz.i += sz
	return tok
}

// Tokenize appends the full token sequence of src to dst, ending with
// a TEOF token.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	tz := NewTokenizer(src)
	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		dst = append(dst, tok)
		if tok.Type == TEOF {
			return dst, nil
		}
	}
}

func punct(c byte) (TokenType, bool) {
	switch c {
	case '{':
		return TLCurl, true
	case '}':
		return TRCurl, true
	case '[':
		return TLSquare, true
	case ']':
		return TRSquare, true
	case ':':
		return TColon, true
	case ';':
		return TSemi, true
	case ',':
		return TComma, true
	default:
		return 0, false
	}
}

func whitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}
