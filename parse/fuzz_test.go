package parse

import (
	"bytes"
	"testing"

	"github.com/alexvarney/BasicObjectNotation2/encode"
	"github.com/alexvarney/BasicObjectNotation2/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// Primitives
		`42`,
		`-3`,
		`3.14`,
		`-1e10`,
		`5f`,
		`""`,
		`"hello"`,
		`'quoted'`,

		// Lists
		`[]`,
		`[1, 2, 3]`,
		`["a", "b"]`,
		`[[1], [2]]`,

		// Objects
		`{}`,
		`{foo: "bar";}`,
		`{a: 1; b: 2;}`,
		`{nested: {object: "value";};}`,
		`{users: [{name: "alice";}, {name: "bob";}];}`,

		// Bare top-level nodes
		`value_1: "value";`,
		`a: 1; b: 2;`,

		// Strings with escapes
		`"with \"quotes\""`,
		`"back\\slash"`,

		// Edge cases
		`{same: 1; same: 2;}`,
		`{x: 1;};`,
		`[1,2,]`,
		`"abc`,
		`1.2.3`,
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}

		// If parse succeeds, encoding and re-parsing must reproduce
		// the same tree
		var buf bytes.Buffer
		if err := encode.Encode(node, &buf); err != nil {
			t.Fatalf("encode of parsed input %q: %v", data, err)
		}
		node2, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("re-parse of %q (from %q): %v", buf.Bytes(), data, err)
		}
		if !ir.Equal(node, node2) {
			t.Fatalf("round trip of %q changed the tree", data)
		}
	})
}
