package ir

import (
	"slices"
)

type Type int

const (
	StringType Type = iota
	IntegerType
	FloatType
	ListType
	ObjectType
)

func (t Type) String() string {
	return map[Type]string{
		StringType:  "string",
		IntegerType: "integer",
		FloatType:   "float",
		ListType:    "list",
		ObjectType:  "object",
	}[t]
}

func Types() []Type {
	return []Type{StringType, IntegerType, FloatType, ListType, ObjectType}
}

// Node is one value in a document tree. Type selects the variant and
// which of the remaining fields are meaningful: String for StringType,
// Int64 for IntegerType, Float64 for FloatType, Values for ListType,
// Fields+Values (parallel, same length) for ObjectType.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []string
	Values []*Node

	String  string
	Int64   int64
	Float64 float64
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntegerType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromSlice(vs []*Node) *Node {
	return FromSliceAt(&Node{}, vs)
}

func FromSliceAt(res *Node, vs []*Node) *Node {
	res.Type = ListType
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
		res.Values[i] = v
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// FromMap builds an Object with sorted keys.
func FromMap(m map[string]*Node) *Node {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: m[key]}
	}
	return FromKeyVals(kvs)
}

// ToMap flattens an Object to a map. With duplicate keys the first
// occurrence wins, matching Get.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		if _, ok := res[field]; ok {
			continue
		}
		res[field] = node.Values[i]
	}
	return res
}

// Get returns the value of the first node with the given key, or nil.
func Get(y *Node, field string) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// GetAll returns the values of every node with the given key, in
// document order.
func GetAll(y *Node, field string) []*Node {
	var res []*Node
	for i := range y.Fields {
		if y.Fields[i] == field {
			res = append(res, y.Values[i])
		}
	}
	return res
}

func Has(y *Node, field string) bool {
	return Get(y, field) != nil
}

// Keys returns the object's keys in document order, duplicates
// included.
func (y *Node) Keys() []string {
	return slices.Clone(y.Fields)
}

// Len returns the number of children: nodes of an Object, elements of
// a List, 0 otherwise.
func (y *Node) Len() int {
	return len(y.Values)
}

// At returns the i-th key/value pair of an Object. For a List the key
// is empty.
func (y *Node) At(i int) (string, *Node) {
	if y.Type == ObjectType {
		return y.Fields[i], y.Values[i]
	}
	return "", y.Values[i]
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

// Visit walks the tree depth-first, calling f twice per node, before
// and after its children. Returning dive=false skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
