// Package encode encodes IR nodes to BON text.
//
// # Usage
//
//	// Encode pretty-printed
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.Indent(4))
//	err := encode.Encode(node, w, encode.Wire(true))
//
// Output is deterministic: the same tree and options always produce
// the same text, and re-parsing the text yields an equal tree.
// Indentation and newlines are cosmetic only.
//
// # Related Packages
//
//   - github.com/alexvarney/BasicObjectNotation2/ir - IR representation
//   - github.com/alexvarney/BasicObjectNotation2/parse - parse text to IR
package encode
