package parse

import "testing"

func TestClassifyNumber(t *testing.T) {
	tests := []struct {
		in   string
		kind numberKind
		body string
	}{
		{"10", integerKind, "10"},
		{"-3", integerKind, "-3"},
		{"007", integerKind, "007"},
		{"10.0", floatKind, "10.0"},
		{"-0.5", floatKind, "-0.5"},
		{"1e14", floatKind, "1e14"},
		{"0E-2", floatKind, "0E-2"},
		{"6.67e-11", floatKind, "6.67e-11"},
		{"5f", floatKind, "5"},
		{"4F", floatKind, "4"},
		{"-7f", floatKind, "-7"},
	}
	for _, tt := range tests {
		kind, body, err := classifyNumber([]byte(tt.in))
		if err != nil {
			t.Errorf("classifyNumber(%q): %v", tt.in, err)
			continue
		}
		if kind != tt.kind || string(body) != tt.body {
			t.Errorf("classifyNumber(%q) = %v,%q, want %v,%q",
				tt.in, kind, body, tt.kind, tt.body)
		}
	}
}

func TestClassifyNumberConflicts(t *testing.T) {
	// the suffix only applies when neither decimal point nor exponent
	// is present
	for _, in := range []string{"5.0f", "1e5f", "6.67e-11F"} {
		if _, _, err := classifyNumber([]byte(in)); err == nil {
			t.Errorf("classifyNumber(%q): expected error", in)
		}
	}
}
