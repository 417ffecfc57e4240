package libdiff

import (
	"github.com/alexvarney/BasicObjectNotation2/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject aligns the two key sequences, then recurses on the values
// of keys both sides share. Because alignment runs over sequences, not
// sets, duplicate keys diff positionally.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, from)
	toRunes := mapFieldsTo(fieldMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	kvs := []ir.KeyVal{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				kvs = append(kvs, ir.KeyVal{
					Key: from.Fields[fi],
					Val: MakeDiff(from.Values[fi], nil),
				})
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				if fRes := df(from.Values[fi], to.Values[ti]); fRes != nil {
					kvs = append(kvs, ir.KeyVal{
						Key: from.Fields[fi],
						Val: fRes,
					})
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				kvs = append(kvs, ir.KeyVal{
					Key: to.Fields[ti],
					Val: MakeDiff(nil, to.Values[ti]),
				})
				ti++
			}
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func mapFieldsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}
