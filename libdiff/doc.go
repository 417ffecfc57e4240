// Package libdiff provides diff computation for BON documents.
//
// # Usage
//
//	// Compute diff between two trees; nil means equal
//	diff := libdiff.Diff(oldNode, newNode)
//
// A diff is itself a BON document. A changed value is recorded as an
// object with "from" and "to" nodes (one side omitted on insert or
// delete), so diffs can be encoded, stored and read back with the
// ordinary codec.
//
// # Related Packages
//
//   - github.com/alexvarney/BasicObjectNotation2/ir - IR representation
package libdiff
