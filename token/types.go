package token

import "fmt"

type TokenType int

const (
	TEOF TokenType = iota
	TString
	TNumber
	TIdent
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TSemi
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TString:  "TString",
		TNumber:  "TNumber",
		TIdent:   "TIdent",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TSemi:    "TSemi",
		TComma:   "TComma",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the value a token denotes: the decoded content for
// string literals, the raw text otherwise.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	case TEOF:
		return "end of input"
	default:
		return string(t.Bytes)
	}
}
