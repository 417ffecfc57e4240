package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexvarney/BasicObjectNotation2/token"
)

var ErrParse = errors.New("parse error")

type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEndOfInput
	UnterminatedString
	InvalidNumberLiteral
	IntegerOverflow
	InvalidKey
)

func (k ErrorKind) String() string {
	return map[ErrorKind]string{
		UnexpectedToken:      "unexpected token",
		UnexpectedEndOfInput: "unexpected end of input",
		UnterminatedString:   "unterminated string",
		InvalidNumberLiteral: "invalid number literal",
		IntegerOverflow:      "integer overflow",
		InvalidKey:           "invalid key",
	}[k]
}

// Error is the single failure type of a parse: the kind of violation,
// where it happened, and for grammar errors which tokens were legal
// there.
type Error struct {
	Kind     ErrorKind
	Pos      *token.Pos
	Expected []token.TokenType
	Actual   token.Token
	Msg      string
}

func (e *Error) Unwrap() error { return ErrParse }

func (e *Error) Line() int   { return e.Pos.Line() }
func (e *Error) Col() int    { return e.Pos.Col() }
func (e *Error) Offset() int { return e.Pos.I }

func (e *Error) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s", ErrParse, e.Kind)
	if e.Msg != "" {
		fmt.Fprintf(b, ": %s", e.Msg)
	}
	if len(e.Expected) > 0 {
		names := make([]string, len(e.Expected))
		for i, t := range e.Expected {
			names[i] = t.String()
		}
		fmt.Fprintf(b, " (expected %s, got %s)", strings.Join(names, "|"), e.Actual.Type)
	}
	if e.Pos != nil {
		fmt.Fprintf(b, " %s", e.Pos)
	}
	return b.String()
}

func unexpected(tok *token.Token, expected ...token.TokenType) *Error {
	kind := UnexpectedToken
	if tok.Type == token.TEOF {
		kind = UnexpectedEndOfInput
	}
	return &Error{
		Kind:     kind,
		Pos:      tok.Pos,
		Expected: expected,
		Actual:   *tok,
	}
}

// fromTokenErr maps a lexical error to its parse error kind, keeping
// the position.
func fromTokenErr(err error) error {
	tErr := &token.Error{}
	if !errors.As(err, &tErr) {
		return err
	}
	kind := UnexpectedToken
	switch {
	case errors.Is(err, token.ErrUnterminated):
		kind = UnterminatedString
	case errors.Is(err, token.ErrNumber):
		kind = InvalidNumberLiteral
	}
	return &Error{
		Kind: kind,
		Pos:  &tErr.Pos,
		Msg:  tErr.Err.Error(),
	}
}
