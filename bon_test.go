package bon

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexvarney/BasicObjectNotation2/ir"
	"github.com/alexvarney/BasicObjectNotation2/parse"
)

func TestParseString(t *testing.T) {
	node := MustParse(`{name: "example"; count: 3;}`)
	if ir.Get(node, "name").String != "example" {
		t.Error("name")
	}
	if ir.Get(node, "count").Int64 != 3 {
		t.Error("count")
	}
	want := strings.Join([]string{
		`{`,
		`  name: "example";`,
		`  count: 3;`,
		`}`,
	}, "\n")
	if got := String(node); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := Wire(node); got != `{name: "example"; count: 3;}` {
		t.Errorf("wire: got %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`42`,
		`-17`,
		`3.14`,
		`1e10`,
		`"hello world"`,
		`[]`,
		`{}`,
		`[1, 2.5, "three", [4], {five: 5;}]`,
		`{a: 1; a: 2; b: {c: [];};}`,
		`value_1: "value"; value_2: 2;`,
	}
	for _, d := range docs {
		node := MustParse(d)
		for _, rendered := range []string{String(node), Wire(node)} {
			back, err := Parse(rendered)
			if err != nil {
				t.Fatalf("%q rendered to %q which does not parse: %v", d, rendered, err)
			}
			if !Equal(node, back) {
				t.Errorf("%q did not survive the round trip via %q", d, rendered)
			}
		}
	}
}

func TestNumericTypes(t *testing.T) {
	ints := []string{`0`, `-5`, `007`, `123456789`}
	for _, d := range ints {
		if n := MustParse(d); n.Type != ir.IntegerType {
			t.Errorf("%q parsed as %s, want Integer", d, n.Type)
		}
	}
	floats := []string{`0.5`, `5f`, `5F`, `-2.5`, `1e10`, `1E-3`, `2.5e2`}
	for _, d := range floats {
		if n := MustParse(d); n.Type != ir.FloatType {
			t.Errorf("%q parsed as %s, want Float", d, n.Type)
		}
	}
}

func TestIdempotentRender(t *testing.T) {
	node := MustParse(`{outer: {inner: [1, 2]; f: 1.5;}; s: "v";}`)
	first := String(node)
	again := String(MustParse(first))
	if first != again {
		t.Errorf("render not stable:\n%s\nvs\n%s", first, again)
	}
}

func TestWhitespaceInsensitive(t *testing.T) {
	a := MustParse(`{a:1;b:[1,2];}`)
	b := MustParse("{\n  a : 1 ;\n\tb : [ 1 , 2 ] ;\n}")
	if !Equal(a, b) {
		t.Error("whitespace changed the parse")
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		`{a: 1}`,     // missing semicolon
		`{a 1;}`,     // missing colon
		`"unclosed`,  // unterminated string
		`1.2.3`,      // bad number
		`{1a: "x";}`, // key starts with digit
		`[1, 2`,      // unclosed list
		`5.0f`,       // point and suffix conflict
	}
	for _, d := range bad {
		_, err := Parse(d)
		if err == nil {
			t.Errorf("%q parsed, want error", d)
			continue
		}
		var perr *parse.Error
		if !errors.As(err, &perr) {
			t.Errorf("%q: error %v is not a *parse.Error", d, err)
		}
	}
}

func TestDiff(t *testing.T) {
	from := MustParse(`{a: 1; b: 2;}`)
	to := MustParse(`{a: 1; b: 3;}`)
	d := Diff(from, to)
	if d == nil {
		t.Fatal("expected a diff")
	}
	if got := Wire(d); got != `{b: {from: 2; to: 3;};}` {
		t.Errorf("got %s", got)
	}
	if Diff(from, from.Clone()) != nil {
		t.Error("diff of equal trees not nil")
	}
}
