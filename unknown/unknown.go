// Package unknown preserves values received for field numbers a schema does
// not recognize, so they round-trip losslessly through decode/re-encode.
// Each message carries one Fields bucket, filling the role of the
// XXX_unrecognized slot protoc-gen-go emits into generated structs.
package unknown

import "github.com/wireproto/wireproto/wire"

// Value is a single preserved unknown-field value, tagged by which of the
// four wire shapes it came from.
type Value struct {
	Fixed32         uint32
	Fixed64         uint64
	Varint          uint64
	LengthDelimited []byte
	kind            valueKind
}

type valueKind int

const (
	kindFixed32 valueKind = iota
	kindFixed64
	kindVarint
	kindLengthDelimited
)

func Fixed32Value(v uint32) Value  { return Value{Fixed32: v, kind: kindFixed32} }
func Fixed64Value(v uint64) Value  { return Value{Fixed64: v, kind: kindFixed64} }
func VarintValue(v uint64) Value   { return Value{Varint: v, kind: kindVarint} }
func BytesValue(b []byte) Value    { return Value{LengthDelimited: b, kind: kindLengthDelimited} }

// WireType reports which wire-format shape produced this value.
func (v Value) WireType() wire.Type {
	switch v.kind {
	case kindFixed32:
		return wire.Fixed32Type
	case kindFixed64:
		return wire.Fixed64Type
	case kindVarint:
		return wire.VarintType
	default:
		return wire.BytesType
	}
}

// Values buckets every preserved value for a single unrecognized field
// number into four parallel ordered sequences, one per wire shape.
type Values struct {
	Fixed32         []uint32
	Fixed64         []uint64
	Varint          []uint64
	LengthDelimited [][]byte
}

// Add appends v to the bucket matching its wire shape.
func (vs *Values) Add(v Value) {
	switch v.kind {
	case kindFixed32:
		vs.Fixed32 = append(vs.Fixed32, v.Fixed32)
	case kindFixed64:
		vs.Fixed64 = append(vs.Fixed64, v.Fixed64)
	case kindVarint:
		vs.Varint = append(vs.Varint, v.Varint)
	default:
		vs.LengthDelimited = append(vs.LengthDelimited, v.LengthDelimited)
	}
}

// Len reports the total number of preserved values across all four buckets.
func (vs *Values) Len() int {
	if vs == nil {
		return 0
	}
	return len(vs.Fixed32) + len(vs.Fixed64) + len(vs.Varint) + len(vs.LengthDelimited)
}

// Range calls f once per preserved value, in a fixed bucket order: all
// fixed32, then all fixed64, then all varint, then all length-delimited.
// It stops early if f returns false.
func (vs *Values) Range(f func(Value) bool) {
	if vs == nil {
		return
	}
	for _, x := range vs.Fixed32 {
		if !f(Fixed32Value(x)) {
			return
		}
	}
	for _, x := range vs.Fixed64 {
		if !f(Fixed64Value(x)) {
			return
		}
	}
	for _, x := range vs.Varint {
		if !f(VarintValue(x)) {
			return
		}
	}
	for _, x := range vs.LengthDelimited {
		if !f(BytesValue(x)) {
			return
		}
	}
}

// Fields preserves unknown values bucketed per field number, in first-seen
// field-number order, matching the append-only semantics unrecognized wire
// bytes need for lossless forwarding.
type Fields struct {
	order []wire.Number
	byNum map[wire.Number]*Values
}

// Clone returns an independent deep copy of f: mutating the clone's
// buckets never affects f's.
func (f *Fields) Clone() Fields {
	var out Fields
	f.Range(func(num wire.Number, values *Values) bool {
		clone := &Values{
			Fixed32:         append([]uint32(nil), values.Fixed32...),
			Fixed64:         append([]uint64(nil), values.Fixed64...),
			Varint:          append([]uint64(nil), values.Varint...),
			LengthDelimited: make([][]byte, len(values.LengthDelimited)),
		}
		for i, b := range values.LengthDelimited {
			clone.LengthDelimited[i] = append([]byte(nil), b...)
		}
		if out.byNum == nil {
			out.byNum = make(map[wire.Number]*Values)
		}
		out.byNum[num] = clone
		out.order = append(out.order, num)
		return true
	})
	return out
}

// Add records value as having been seen for field number num.
func (f *Fields) Add(num wire.Number, value Value) {
	if f.byNum == nil {
		f.byNum = make(map[wire.Number]*Values)
	}
	vs, ok := f.byNum[num]
	if !ok {
		vs = &Values{}
		f.byNum[num] = vs
		f.order = append(f.order, num)
	}
	vs.Add(value)
}

// Get returns the values seen for field number num, or nil if none.
func (f *Fields) Get(num wire.Number) *Values {
	if f == nil {
		return nil
	}
	return f.byNum[num]
}

// Len reports how many distinct field numbers carry preserved values.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Range calls f once per field number, in first-seen order, with all of
// that number's preserved values. It stops early if f returns false.
func (f *Fields) Range(fn func(num wire.Number, values *Values) bool) {
	if f == nil {
		return
	}
	for _, num := range f.order {
		if !fn(num, f.byNum[num]) {
			return
		}
	}
}
