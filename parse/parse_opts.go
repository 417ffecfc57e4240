package parse

import (
	"github.com/alexvarney/BasicObjectNotation2/ir"
	"github.com/alexvarney/BasicObjectNotation2/token"
)

type parseOpts struct {
	topLevelNodes bool
	positions     map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// TopLevelNodes controls whether a document may be a bare node
// sequence ("key: value; ...") without enclosing braces. On by
// default.
func TopLevelNodes(v bool) ParseOption {
	return func(o *parseOpts) { o.topLevelNodes = v }
}

// Positions records the source position of every parsed node into m.
func Positions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
