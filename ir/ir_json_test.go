package ir

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestJSONRoundTrip(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "s", Val: FromString("hello")},
		{Key: "n", Val: FromInt(-3)},
		{Key: "f", Val: FromFloat(6.67e-11)},
		{Key: "l", Val: FromSlice([]*Node{FromInt(1), FromString("two")})},
		{Key: "o", Val: FromKeyVals(nil)},
	})
	d, err := json.Marshal(y)
	if err != nil {
		t.Fatal(err)
	}
	got := &Node{}
	if err := json.Unmarshal(d, got); err != nil {
		t.Fatal(err)
	}
	if !Equal(y, got) {
		t.Error("JSON round trip not Equal")
	}
	ignore := cmpopts.IgnoreFields(Node{}, "Parent", "ParentIndex", "ParentField")
	if diff := cmp.Diff(y, got, ignore); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}
