package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// process-wide seed so hashes from separate calls are comparable
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node. Equal trees hash
// equal within one process. It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))
	switch n.Type {
	case StringType:
		h.WriteString(n.String)
	case IntegerType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(n.Int64))
		h.Write(b[:])
	case FloatType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.Float64))
		h.Write(b[:])
	case ListType:
		var b [8]byte
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		var b [8]byte
		for i, field := range n.Fields {
			h.WriteString(field)
			binary.LittleEndian.PutUint64(b[:], n.Values[i].Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
