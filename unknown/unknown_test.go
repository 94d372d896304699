package unknown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/wire"
)

func TestValuesRangeOrderIsFixed32Fixed64VarintBytes(t *testing.T) {
	var vs unknown.Values
	vs.Add(unknown.VarintValue(1))
	vs.Add(unknown.BytesValue([]byte("a")))
	vs.Add(unknown.Fixed64Value(2))
	vs.Add(unknown.Fixed32Value(3))

	var order []string
	vs.Range(func(v unknown.Value) bool {
		order = append(order, v.WireType().String())
		return true
	})
	assert.Equal(t, []string{"fixed32", "fixed64", "varint", "bytes"}, order)
}

func TestFieldsRangeOrderByFirstAppearance(t *testing.T) {
	var f unknown.Fields
	f.Add(7, unknown.VarintValue(1))
	f.Add(3, unknown.VarintValue(2))
	f.Add(7, unknown.VarintValue(3))

	var nums []wire.Number
	f.Range(func(num wire.Number, values *unknown.Values) bool {
		nums = append(nums, num)
		return true
	})
	assert.Equal(t, []wire.Number{7, 3}, nums)
}

func TestFieldsLenCountsDistinctNumbers(t *testing.T) {
	var f unknown.Fields
	f.Add(1, unknown.VarintValue(1))
	f.Add(1, unknown.VarintValue(2))
	f.Add(2, unknown.VarintValue(3))
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 2, f.Get(1).Len())
}

func TestFieldsCloneIsIndependent(t *testing.T) {
	var f unknown.Fields
	f.Add(1, unknown.BytesValue([]byte("x")))
	clone := f.Clone()

	f.Add(1, unknown.BytesValue([]byte("y")))
	assert.Equal(t, 1, clone.Get(1).Len())
	assert.Equal(t, 2, f.Get(1).Len())
}

func TestRangeStopsEarly(t *testing.T) {
	var vs unknown.Values
	vs.Add(unknown.VarintValue(1))
	vs.Add(unknown.VarintValue(2))
	count := 0
	vs.Range(func(unknown.Value) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
