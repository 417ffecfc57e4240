package libdiff

import "github.com/alexvarney/BasicObjectNotation2/ir"

// DiffFunc computes the difference of two nodes, nil when equal.
type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff returns the difference between two trees as a BON document, or
// nil when the trees are equal.
func Diff(from, to *ir.Node) *ir.Node {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil || from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, Diff)
	case ir.ListType:
		return DiffList(from, to, Diff)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff records a single change. A nil from is an insert, a nil to
// a delete.
func MakeDiff(from, to *ir.Node) *ir.Node {
	kvs := []ir.KeyVal{}
	if from != nil {
		kvs = append(kvs, ir.KeyVal{Key: "from", Val: from.Clone()})
	}
	if to != nil {
		kvs = append(kvs, ir.KeyVal{Key: "to", Val: to.Clone()})
	}
	return ir.FromKeyVals(kvs)
}
