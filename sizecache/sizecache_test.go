package sizecache_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/wireproto/wireproto/sizecache"
)

func TestCachedSizeGetSet(t *testing.T) {
	var c sizecache.CachedSize
	assert.EqualValues(t, 0, c.Get())
	c.Set(42)
	assert.EqualValues(t, 42, c.Get())
}

func TestCachedSizeEqualityIsUniversal(t *testing.T) {
	a := &sizecache.CachedSize{}
	a.Set(5)
	b := &sizecache.CachedSize{}
	b.Set(99)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
}

func TestCachedSizeCloneCopiesValueNotIdentity(t *testing.T) {
	a := &sizecache.CachedSize{}
	a.Set(7)
	clone := a.Clone()
	assert.EqualValues(t, 7, clone.Get())
	clone.Set(8)
	assert.EqualValues(t, 7, a.Get())
}

func TestSizeCacheMemoizesByIdentity(t *testing.T) {
	c := sizecache.NewSizeCache()
	x := 5
	calls := 0
	compute := func() int {
		calls++
		return 123
	}
	got1 := c.SizeOf(unsafe.Pointer(&x), compute)
	got2 := c.SizeOf(unsafe.Pointer(&x), compute)
	assert.Equal(t, 123, got1)
	assert.Equal(t, 123, got2)
	assert.Equal(t, 1, calls)
}
