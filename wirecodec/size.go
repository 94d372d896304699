package wirecodec

import (
	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/wire"
)

// Size calculator. Each *NoTag function returns the encoded length of a
// bare value; SizeField and SizeWithLengthDelimiter add the enclosing
// tag (and length prefix) on top.

func SizeVarint32(v int32) int   { return wire.SizeVarintSigned64(int64(v)) }
func SizeVarint64(v int64) int   { return wire.SizeVarintSigned64(v) }
func SizeUint32(v uint32) int    { return wire.SizeVarint32(v) }
func SizeUint64(v uint64) int    { return wire.SizeVarint64(v) }
func SizeSint32(v int32) int     { return wire.SizeVarintZigzag32(v) }
func SizeSint64(v int64) int     { return wire.SizeVarintZigzag64(v) }
func SizeBool() int              { return 1 }
func SizeFixed32() int           { return 4 }
func SizeFixed64() int           { return 8 }
func SizeBytesNoTag(v []byte) int { return wire.SizeBytes(len(v)) }
func SizeStringNoTag(v string) int { return wire.SizeBytes(len(v)) }

// SizeField adds the tag's own length to a no-tag value size.
func SizeField(num wire.Number, valueSize int) int {
	return wire.SizeTag(num) + valueSize
}

// SizeWithLengthDelimiter adds both a tag and a length-prefix varint ahead
// of contentSize, the size of a sub-message or map entry's own fields.
func SizeWithLengthDelimiter(num wire.Number, contentSize int) int {
	return wire.SizeTag(num) + wire.SizeBytes(contentSize)
}

// SizePackedVarint sizes a packed repeated field of varint-coded elements,
// summing per-element sizes via elemSize. Empty repeateds contribute
// nothing, since a packed field with no elements is omitted entirely.
func SizePackedVarint(num wire.Number, elemSize func(i int) int, n int) int {
	if n == 0 {
		return 0
	}
	data := 0
	for i := 0; i < n; i++ {
		data += elemSize(i)
	}
	return SizeWithLengthDelimiter(num, data)
}

// SizePackedFixed sizes a packed repeated field of fixed-width elements
// (fixed32/sfixed32/float: width 4; fixed64/sfixed64/double: width 8).
func SizePackedFixed(num wire.Number, width, n int) int {
	if n == 0 {
		return 0
	}
	return SizeWithLengthDelimiter(num, width*n)
}

// SizeUnknownFields sums the encoded size of every preserved unknown value
// across every field number, in any order (order does not affect total
// size).
func SizeUnknownFields(fields *unknown.Fields) int {
	total := 0
	fields.Range(func(num wire.Number, values *unknown.Values) bool {
		tagLen := wire.SizeTag(num)
		total += tagLen * len(values.Fixed32)
		total += 4 * len(values.Fixed32)
		total += tagLen * len(values.Fixed64)
		total += 8 * len(values.Fixed64)
		total += tagLen * len(values.Varint)
		for _, v := range values.Varint {
			total += wire.SizeVarint64(v)
		}
		for _, b := range values.LengthDelimited {
			total += tagLen + wire.SizeBytes(len(b))
		}
		return true
	})
	return total
}
