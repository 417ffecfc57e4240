package parse

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/alexvarney/BasicObjectNotation2/ir"
	"github.com/alexvarney/BasicObjectNotation2/token"
)

// Numeric classification is a pure decision over the literal's raw
// text, applied once per number token and kept apart from the
// scanning grammar. Precedence is fixed: a decimal point or exponent
// makes a Float; a trailing 'f' suffix makes a Float only when neither
// is present, and combining the suffix with either form is malformed.

type numberKind int

const (
	integerKind numberKind = iota
	floatKind
)

func classifyNumber(lit []byte) (numberKind, []byte, error) {
	body := lit
	suffix := false
	if n := len(body); n > 0 && (body[n-1] == 'f' || body[n-1] == 'F') {
		suffix = true
		body = body[:n-1]
	}
	point := bytes.IndexByte(body, '.') >= 0
	exponent := bytes.IndexAny(body, "eE") >= 0
	switch {
	case point || exponent:
		if suffix {
			return 0, nil, errors.New("float suffix on a decimal or exponent form")
		}
		return floatKind, body, nil
	case suffix:
		return floatKind, body, nil
	default:
		return integerKind, body, nil
	}
}

// parseNumber converts a TNumber token to an Integer or Float node.
func parseNumber(tok *token.Token) (*ir.Node, error) {
	kind, body, err := classifyNumber(tok.Bytes)
	if err != nil {
		return nil, &Error{
			Kind: InvalidNumberLiteral,
			Pos:  tok.Pos,
			Msg:  err.Error(),
		}
	}
	switch kind {
	case integerKind:
		i, err := strconv.ParseInt(string(body), 10, 64)
		if err != nil {
			kind := InvalidNumberLiteral
			if errors.Is(err, strconv.ErrRange) {
				kind = IntegerOverflow
			}
			return nil, &Error{
				Kind: kind,
				Pos:  tok.Pos,
				Msg:  string(tok.Bytes),
			}
		}
		return ir.FromInt(i), nil
	default:
		f, err := strconv.ParseFloat(string(body), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &Error{
				Kind: InvalidNumberLiteral,
				Pos:  tok.Pos,
				Msg:  string(tok.Bytes),
			}
		}
		// a computed exponent overflowing to ±Inf is kept, not rejected
		return ir.FromFloat(f), nil
	}
}
