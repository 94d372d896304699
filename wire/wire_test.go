package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wireproto/wireproto/wire"
)

func TestSizeVarint64_Thresholds(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{1<<14 - 1, 2},
		{1 << 14, 3},
		{1<<63 - 1, 9},
		{1 << 63, 10},
		{^uint64(0), 10},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, wire.SizeVarint64(c.v), "v=%d", c.v)
	}
}

func TestSizeVarint64_AlwaysInRange(t *testing.T) {
	for _, v := range []uint64{0, 1, 1 << 10, 1 << 20, 1 << 40, 1 << 62, ^uint64(0)} {
		n := wire.SizeVarint64(v)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestZigZag32Involution(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 1 << 30, -(1 << 30), -2147483648, 2147483647} {
		assert.Equal(t, v, wire.DecodeZigZag32(wire.EncodeZigZag32(v)))
	}
	assert.Equal(t, uint32(1), wire.EncodeZigZag32(-1))
	assert.Equal(t, uint32(2), wire.EncodeZigZag32(1))
}

func TestZigZag64Involution(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 2, -2, 1 << 40, -(1 << 40)} {
		assert.Equal(t, v, wire.DecodeZigZag64(wire.EncodeZigZag64(v)))
	}
}

func TestTagRoundTrip(t *testing.T) {
	num, typ := wire.DecodeTag(wire.EncodeTag(150, wire.BytesType))
	assert.Equal(t, wire.Number(150), num)
	assert.Equal(t, wire.BytesType, typ)
}

func TestSizeTagIndependentOfWireType(t *testing.T) {
	for _, num := range []wire.Number{1, 15, 16, 2047, 2048, 1 << 28} {
		want := wire.SizeTag(num)
		for _, typ := range []wire.Type{wire.VarintType, wire.Fixed64Type, wire.BytesType, wire.StartGroup, wire.EndGroup, wire.Fixed32Type} {
			got := wire.SizeVarint64(wire.EncodeTag(num, typ))
			assert.Equal(t, want, got, "num=%d typ=%v", num, typ)
		}
	}
}

func TestInt32FieldSizeMatchesEncoding(t *testing.T) {
	// int32 a = 1 set to 150 -> 08 96 01
	tag := wire.EncodeTag(1, wire.VarintType)
	assert.Equal(t, uint64(0x08), tag)
	assert.Equal(t, 3, wire.SizeTag(1)+wire.SizeVarint64(150))
}

func TestSint32NegativeOneIsOneByte(t *testing.T) {
	// sint32 b = 2 set to -1 -> 10 01
	assert.Equal(t, uint32(1), wire.EncodeZigZag32(-1))
	assert.Equal(t, 1, wire.SizeVarintZigzag32(-1))
}
