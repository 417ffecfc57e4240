// Package ir is the in-memory representation of BON documents.
//
// A document is a tree of Nodes. Each Node holds exactly one of the
// five BON variants: String, Integer, Float, List or Object. Trees are
// built by the parser (or the From* constructors) and are not mutated
// afterwards, so a finished tree is safe for concurrent reads.
//
// Objects preserve the order of their key/value pairs and permit
// duplicate keys; the format does not say which duplicate wins, so
// lookup policy is left to the consumer: Get returns the first match,
// GetAll returns every match in order.
//
// # Related Packages
//
//   - github.com/alexvarney/BasicObjectNotation2/parse - parse text to IR
//   - github.com/alexvarney/BasicObjectNotation2/encode - encode IR to text
package ir
