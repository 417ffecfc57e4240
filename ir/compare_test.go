package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Integer < Float < String < List < Object
		{"Integer < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < String", FromFloat(1), FromString("a"), -1},
		{"String < List", FromString("a"), FromSlice(nil), -1},
		{"List < Object", FromSlice(nil), FromKeyVals(nil), -1},

		// Integer comparison
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Int == Int", FromInt(7), FromInt(7), 0},
		{"Neg < Pos", FromInt(-3), FromInt(3), -1},

		// Float comparison
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Float == Float", FromFloat(6.67e-11), FromFloat(6.67e-11), 0},

		// String comparison
		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		// List comparison
		{"Empty List == Empty List", FromSlice(nil), FromSlice(nil), 0},
		{"Short List < Long List", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"List Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Object comparison
		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
		{"Object Node Order Significant",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqualDistinguishesNumericVariants(t *testing.T) {
	if Equal(FromInt(10), FromFloat(10.0)) {
		t.Error("Integer(10) equals Float(10.0)")
	}
}
