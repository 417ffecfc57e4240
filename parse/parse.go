package parse

import (
	"github.com/alexvarney/BasicObjectNotation2/ir"
	"github.com/alexvarney/BasicObjectNotation2/token"
)

// Parse converts a BON document to its IR tree. Any Value is accepted
// at top level; with TopLevelNodes (the default) a bare node sequence
// is read as an implicit Object.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{topLevelNodes: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fromTokenErr(err)
	}
	off := 0
	var res *ir.Node
	if pOpts.topLevelNodes && len(toks) > 1 && toks[0].Type == token.TIdent && toks[1].Type == token.TColon {
		obj := &ir.Node{Type: ir.ObjectType}
		trackPos(obj, toks[0].Pos, pOpts)
		res, err = parseNodes(toks, obj, &off, pOpts, token.TEOF)
	} else {
		res, err = parseValue(toks, nil, &off, pOpts)
	}
	if err != nil {
		return nil, err
	}
	// one trailing ';' after a braced top-level object is tolerated
	if res.Type == ir.ObjectType && toks[off].Type == token.TSemi {
		off++
	}
	if toks[off].Type != token.TEOF {
		return nil, unexpected(&toks[off], token.TEOF)
	}
	return res, nil
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

var valueStart = []token.TokenType{token.TString, token.TNumber, token.TLCurl, token.TLSquare}

func parseValue(toks []token.Token, p *ir.Node, pi *int, opts *parseOpts) (*ir.Node, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		pos := t.Pos
		*pi++
		objY := &ir.Node{Type: ir.ObjectType, Parent: p}
		trackPos(objY, pos, opts)
		return parseNodes(toks, objY, pi, opts, token.TRCurl)
	case token.TLSquare:
		pos := t.Pos
		*pi++
		arrY := &ir.Node{Type: ir.ListType, Parent: p}
		trackPos(arrY, pos, opts)
		return parseList(toks, arrY, pi, opts)
	case token.TString:
		*pi++
		sy := ir.FromString(t.String())
		sy.Parent = p
		trackPos(sy, t.Pos, opts)
		return sy, nil
	case token.TNumber:
		ny, err := parseNumber(t)
		if err != nil {
			return nil, err
		}
		*pi++
		ny.Parent = p
		trackPos(ny, t.Pos, opts)
		return ny, nil
	default:
		return nil, unexpected(t, valueStart...)
	}
}

// parseNodes reads "key ':' value ';'" nodes until the end token: '}'
// for braced objects, EOF for a bare top-level node sequence.
func parseNodes(toks []token.Token, p *ir.Node, pi *int, opts *parseOpts, end token.TokenType) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for {
		tok := &toks[*pi]
		switch tok.Type {
		case end:
			if end == token.TRCurl {
				*pi++
			}
			return ir.FromKeyValsAt(p, kvs), nil
		case token.TIdent:
			key := string(tok.Bytes)
			*pi++
			if colTok := &toks[*pi]; colTok.Type != token.TColon {
				return nil, unexpected(colTok, token.TColon)
			}
			*pi++
			val, err := parseValue(toks, p, pi, opts)
			if err != nil {
				return nil, err
			}
			if semiTok := &toks[*pi]; semiTok.Type != token.TSemi {
				return nil, unexpected(semiTok, token.TSemi)
			}
			*pi++
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		case token.TNumber:
			return nil, &Error{
				Kind:   InvalidKey,
				Pos:    tok.Pos,
				Actual: *tok,
				Msg:    "key must not start with a digit",
			}
		default:
			return nil, unexpected(tok, token.TIdent, end)
		}
	}
}

func parseList(toks []token.Token, p *ir.Node, pi *int, opts *parseOpts) (*ir.Node, error) {
	vals := []*ir.Node{}
	if toks[*pi].Type == token.TRSquare {
		*pi++
		return ir.FromSliceAt(p, vals), nil
	}
	for {
		elt, err := parseValue(toks, p, pi, opts)
		if err != nil {
			return nil, err
		}
		vals = append(vals, elt)
		tok := &toks[*pi]
		switch tok.Type {
		case token.TRSquare:
			*pi++
			return ir.FromSliceAt(p, vals), nil
		case token.TComma:
			*pi++
		default:
			return nil, unexpected(tok, token.TComma, token.TRSquare)
		}
	}
}
