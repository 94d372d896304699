package protomsg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/protomsg"
	"github.com/wireproto/wireproto/testmsgs"
	"github.com/wireproto/wireproto/werror"
)

func TestSizeMatchesMarshalledLength(t *testing.T) {
	m := &testmsgs.Proto3Scalars{Name: "abc", Age: 300, Active: true}
	b, err := protomsg.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, len(b), protomsg.Size(m))
}

func TestMarshalRequiredNotSetIsNonFatal(t *testing.T) {
	m := &testmsgs.Proto2Scalars{}
	m.SetAge(7)
	b, err := protomsg.Marshal(m)
	require.Error(t, err)
	var rns *werror.RequiredNotSetError
	require.ErrorAs(t, err, &rns)
	assert.NotEmpty(t, b, "the set fields are still encoded alongside the non-fatal error")

	allowed, err := protomsg.MarshalOptions{AllowPartial: true}.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, b, allowed)
}

func TestUnmarshalRequiredNotSetIsNonFatal(t *testing.T) {
	src := &testmsgs.Proto2Scalars{}
	src.SetAge(7)
	b, err := protomsg.MarshalOptions{AllowPartial: true}.Marshal(src)
	require.NoError(t, err)

	got := &testmsgs.Proto2Scalars{}
	err = protomsg.Unmarshal(b, got)
	require.Error(t, err)
	var rns *werror.RequiredNotSetError
	require.ErrorAs(t, err, &rns)
	assert.EqualValues(t, 7, got.GetAge(), "everything present on the wire is still populated")

	require.NoError(t, protomsg.UnmarshalOptions{AllowPartial: true}.Unmarshal(b, got))
	assert.False(t, got.HasId())
}

func TestUnmarshalResetsPriorContents(t *testing.T) {
	m := &testmsgs.Proto3Scalars{Name: "stale", Age: 9}
	fresh, err := protomsg.Marshal(&testmsgs.Proto3Scalars{Active: true})
	require.NoError(t, err)

	require.NoError(t, protomsg.Unmarshal(fresh, m))
	assert.Empty(t, m.Name)
	assert.Zero(t, m.Age)
	assert.True(t, m.Active)
}

func TestEqualIgnoresCachedSize(t *testing.T) {
	a := &testmsgs.Proto3Scalars{Name: "x"}
	b := &testmsgs.Proto3Scalars{Name: "x"}
	_ = a.ProtoSize() // refreshes a's cache; b's stays zero
	assert.True(t, protomsg.Equal(a, b))

	b.Name = "y"
	assert.False(t, protomsg.Equal(a, b))
}

func TestEqualOnMapsIsOrderInsensitive(t *testing.T) {
	a := &testmsgs.MapMsg{Counts: map[string]int32{"a": 1, "b": 2, "c": 3}}
	b := &testmsgs.MapMsg{Counts: map[string]int32{"c": 3, "b": 2, "a": 1}}
	assert.True(t, protomsg.Equal(a, b))
}

func TestCloneProducesEqualIndependentCopy(t *testing.T) {
	m := &testmsgs.Proto3Scalars{Name: "x", Age: 5}
	clone := protomsg.Clone(m).(*testmsgs.Proto3Scalars)
	assert.True(t, protomsg.Equal(m, clone))

	clone.Age = 6
	assert.EqualValues(t, 5, m.Age)
}
