package ir

import (
	"encoding/json"
	"fmt"
)

// JSON form of a Node for debugging and interop. Parent links are
// rebuilt on unmarshal rather than serialized.
type irBase struct {
	Type   Type     `json:"type"`
	Fields []string `json:"fields,omitempty"`
	Values []*Node  `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case IntegerType:
		type C struct {
			irBase
			Int64 int64 `json:"int"`
		}
		return json.Marshal(C{irBase: *base, Int64: y.Int64})
	case FloatType:
		type C struct {
			irBase
			Float64 float64 `json:"float"`
		}
		return json.Marshal(C{irBase: *base, Float64: y.Float64})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String  string  `json:"string"`
		Int64   int64   `json:"int"`
		Float64 float64 `json:"float"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.String = tmp.String
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("object with %d fields and %d values", len(y.Fields), len(y.Values))
		}
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
			v.ParentField = y.Fields[i]
		}
	case ListType:
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
		}
	default:
		if len(y.Fields) != 0 || len(y.Values) != 0 {
			return fmt.Errorf("%s with children", y.Type)
		}
	}
	return nil
}
