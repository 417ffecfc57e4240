package libdiff

import (
	"github.com/alexvarney/BasicObjectNotation2/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffList aligns the two element sequences by structural hash and
// returns a list of change records, each carrying the element's index:
// in the from-side for deletes, the to-side for inserts.
func DiffList(from, to *ir.Node, df DiffFunc) *ir.Node {
	hashMap := map[uint64]rune{}
	fromRunes := mapEltsTo(hashMap, from)
	toRunes := mapEltsTo(hashMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	recs := []*ir.Node{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				recs = append(recs, record(fi, from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				// equal hashes are almost always equal trees; recurse
				// anyway so a collision cannot hide a change
				if d := df(from.Values[fi], to.Values[ti]); d != nil {
					recs = append(recs, record(fi, nil, nil, ir.KeyVal{Key: "diff", Val: d}))
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				recs = append(recs, record(ti, nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(recs) == 0 {
		return nil
	}
	return ir.FromSlice(recs)
}

func record(index int, from, to *ir.Node, extra ...ir.KeyVal) *ir.Node {
	kvs := []ir.KeyVal{{Key: "index", Val: ir.FromInt(int64(index))}}
	if from != nil {
		kvs = append(kvs, ir.KeyVal{Key: "from", Val: from.Clone()})
	}
	if to != nil {
		kvs = append(kvs, ir.KeyVal{Key: "to", Val: to.Clone()})
	}
	kvs = append(kvs, extra...)
	return ir.FromKeyVals(kvs)
}

func mapEltsTo(m map[uint64]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		h := v.Hash()
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}
