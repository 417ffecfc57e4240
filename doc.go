// Package bon is the top-level entry point for the BON
// (BasicObjectNotation) codec.
//
// BON is a JSON-like text format in which every key/value pair is a
// node terminated by a semicolon:
//
//	{
//	  name: "example";
//	  count: 3;
//	  ratio: 0.5;
//	  tags: ["a", "b"];
//	}
//
// Integers and floats are distinct types, decided by the literal
// itself: a decimal point, an exponent, or a trailing 'f' makes a
// float, anything else an integer.
//
// # Usage
//
//	node, err := bon.Parse(`{x: 1; y: 2.5;}`)
//	if err != nil { ... }
//	fmt.Println(bon.String(node)) // pretty, indented
//	fmt.Println(bon.Wire(node))   // single line
//
// The subpackages carry the machinery: token (lexing), ir (the value
// model), parse, encode and libdiff.
package bon
