package bon

import (
	"github.com/alexvarney/BasicObjectNotation2/encode"
	"github.com/alexvarney/BasicObjectNotation2/ir"
	"github.com/alexvarney/BasicObjectNotation2/libdiff"
	"github.com/alexvarney/BasicObjectNotation2/parse"
)

// Parse parses a BON document.
func Parse(doc string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse([]byte(doc), opts...)
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(doc []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(doc, opts...)
}

// MustParse panics if doc does not parse. For fixtures and tests.
func MustParse(doc string, opts ...parse.ParseOption) *ir.Node {
	node, err := parse.Parse([]byte(doc), opts...)
	if err != nil {
		panic(err)
	}
	return node
}

// String renders node in the pretty, indented form.
func String(node *ir.Node, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}

// Wire renders node on a single line.
func Wire(node *ir.Node, opts ...encode.EncodeOption) string {
	opts = append(opts, encode.Wire(true))
	return encode.MustString(node, opts...)
}

// Equal reports whether two trees hold the same data.
func Equal(a, b *ir.Node) bool {
	return ir.Equal(a, b)
}

// Diff returns the difference between two trees as a BON document, nil
// when they are equal.
func Diff(from, to *ir.Node) *ir.Node {
	return libdiff.Diff(from, to)
}
