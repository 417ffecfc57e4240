// Package parse provides BON parsing support.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{greeting: "hello, world";}`))
//
// Parse returns the document's IR tree, or a *parse.Error carrying the
// error kind and the exact position (byte offset, line, column) of the
// first violation. No partial tree is ever returned.
//
// # Related Packages
//
//   - github.com/alexvarney/BasicObjectNotation2/ir - IR representation
//   - github.com/alexvarney/BasicObjectNotation2/encode - encode IR to text
package parse
