// Package ir provides the canonical in-memory value model shared by
// all oq formats.
//
// # Overview
//
// Every document, whatever its wire format, decodes into a tree of
// ir.Node values and is encoded back out from one. The Node is a
// recursive tagged union: the Type field selects between null, bool,
// number, string, array, and object.
//
// # Node Structure
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there are always the same number of fields as values.
// Keys are unique strings and their document order is preserved:
// decoders resolve duplicate keys with last-write-wins while keeping
// the key's original position (see Set).
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed, exact)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//
// A number never carries both, so integers round-trip without
// precision loss up to 64 bits.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "key", Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// FromKeyVals preserves the given key order; FromMap sorts keys,
// since Go maps have none.
//
// # Ownership
//
// Nodes are single-writer, single-reader per call: each decode
// produces a fresh tree, the query stage produces new trees, and an
// encoder consumes a tree without mutating it. No shared mutable
// state persists between calls.
package ir
