package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireproto/wireproto/plan"
	"github.com/wireproto/wireproto/schema"
	"github.com/wireproto/wireproto/wire"
)

func TestProto3ScalarIsBareNoPresence(t *testing.T) {
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "age", Kind: schema.Int32Kind,
		Cardinality: schema.Optional, Syntax: schema.Proto3,
	})
	require.NoError(t, err)
	assert.Equal(t, plan.Bare, fp.Representation)
	assert.False(t, fp.HasPresence())
	assert.Equal(t, wire.VarintType, fp.WireType)
}

func TestProto2ScalarIsInlineOptional(t *testing.T) {
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "age", Kind: schema.Int32Kind,
		Cardinality: schema.Optional, Syntax: schema.Proto2,
	})
	require.NoError(t, err)
	assert.Equal(t, plan.InlineOptional, fp.Representation)
	assert.True(t, fp.HasPresence())
}

func TestProto2StringIsOwnedOptional(t *testing.T) {
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "name", Kind: schema.StringKind,
		Cardinality: schema.Optional, Syntax: schema.Proto2,
	})
	require.NoError(t, err)
	assert.Equal(t, plan.OwnedOptional, fp.Representation)
	assert.True(t, fp.HasPresence())
}

func TestProto3StringIsBareNoPresence(t *testing.T) {
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "name", Kind: schema.StringKind,
		Cardinality: schema.Optional, Syntax: schema.Proto3,
	})
	require.NoError(t, err)
	assert.Equal(t, plan.Bare, fp.Representation, "proto3 string outside a oneof has no presence bit")
	assert.False(t, fp.HasPresence())
}

func TestOneofScalarVariantTracksPresence(t *testing.T) {
	idx0 := 0
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 6, Name: "x", Kind: schema.Int32Kind,
		Cardinality: schema.Optional, Syntax: schema.Proto3, OneofIndex: &idx0,
	})
	require.NoError(t, err)
	assert.Equal(t, plan.OneofVariant, fp.RepKind)
	assert.Equal(t, plan.InlineOptional, fp.Representation, "oneof variants are never bare even in proto3")
	assert.True(t, fp.HasPresence())
}

func TestMessageFieldIsAlwaysOwnedOptionalEvenInProto3(t *testing.T) {
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "child", Kind: schema.MessageKind, TypeName: "Child",
		Cardinality: schema.Optional, Syntax: schema.Proto3,
	})
	require.NoError(t, err)
	assert.Equal(t, plan.OwnedOptional, fp.Representation)
	assert.True(t, fp.HasPresence(), "proto3 message fields still track presence")
}

func TestEffectivePackedDefaults(t *testing.T) {
	assert.True(t, plan.EffectivePacked(schema.Proto3, schema.Int32Kind, nil))
	assert.False(t, plan.EffectivePacked(schema.Proto2, schema.Int32Kind, nil))
	off := false
	assert.False(t, plan.EffectivePacked(schema.Proto3, schema.Int32Kind, &off))
	on := true
	assert.True(t, plan.EffectivePacked(schema.Proto2, schema.Int32Kind, &on))
	assert.False(t, plan.EffectivePacked(schema.Proto3, schema.StringKind, nil), "length-delimited kinds are never packable")
}

func TestRepeatedFieldPlanCarriesFixedWidthForFastPath(t *testing.T) {
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "samples", Kind: schema.FloatKind,
		Cardinality: schema.Repeated, Syntax: schema.Proto3,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, fp.FixedWidth)
	assert.True(t, fp.Packed)

	fp2, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 2, Name: "ids", Kind: schema.Int32Kind,
		Cardinality: schema.Repeated, Syntax: schema.Proto3,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, fp2.FixedWidth)
}

func TestMapFieldResolvesKeyAndValuePlans(t *testing.T) {
	entry := &schema.MessageContext{
		Name: "StringInt32Entry",
		Fields: []schema.FieldContext{
			{Number: 1, Name: "key", Kind: schema.StringKind, Cardinality: schema.Optional, Syntax: schema.Proto3},
			{Number: 2, Name: "value", Kind: schema.Int32Kind, Cardinality: schema.Optional, Syntax: schema.Proto3},
		},
	}
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 4, Name: "counts", Kind: schema.MessageKind, TypeName: "StringInt32Entry",
		Cardinality: schema.Repeated, Syntax: schema.Proto3, IsMapEntry: true,
		ResolveMessage: func(name string) (*schema.MessageContext, bool) {
			if name == "StringInt32Entry" {
				return entry, true
			}
			return nil, false
		},
	})
	require.NoError(t, err)
	assert.Equal(t, plan.MapKind, fp.RepKind)
	require.NotNil(t, fp.MapKeyPlan)
	require.NotNil(t, fp.MapValuePlan)
	assert.Equal(t, schema.StringKind, fp.MapKeyPlan.ProtoKind)
	assert.Equal(t, schema.Int32Kind, fp.MapValuePlan.ProtoKind)
	assert.Equal(t, "map<string, int32> counts = 4", fp.Definition())
}

func TestMapFieldWithoutResolverIsAPlanTimeError(t *testing.T) {
	_, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 4, Name: "counts", Kind: schema.MessageKind, TypeName: "Entry",
		Cardinality: schema.Repeated, Syntax: schema.Proto3, IsMapEntry: true,
	})
	require.Error(t, err)
}

func TestDefinitionRendersDeclarationShape(t *testing.T) {
	rep, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 3, Name: "scores", Kind: schema.Int32Kind,
		Cardinality: schema.Repeated, Syntax: schema.Proto3,
	})
	require.NoError(t, err)
	assert.Equal(t, "repeated int32 scores = 3", rep.Definition())

	req, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "id", Kind: schema.Int32Kind,
		Cardinality: schema.Required, Syntax: schema.Proto2,
	})
	require.NoError(t, err)
	assert.Equal(t, "required int32 id = 1", req.Definition())

	bare, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 2, Name: "age", Kind: schema.Int32Kind,
		Cardinality: schema.Optional, Syntax: schema.Proto3,
	})
	require.NoError(t, err)
	assert.Equal(t, "int32 age = 2", bare.Definition())
}

func TestEnumDefaultResolvesToDeclaredZeroValue(t *testing.T) {
	enum := &schema.EnumContext{
		Name: "Status",
		Values: []schema.EnumValueContext{
			{Name: "STATUS_UNKNOWN", Number: 0},
			{Name: "STATUS_OK", Number: 1},
		},
		DefaultIndex: 0,
	}
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "status", Kind: schema.EnumKind, TypeName: "Status",
		Cardinality: schema.Optional, Syntax: schema.Proto3,
		ResolveEnum: func(name string) (*schema.EnumContext, bool) { return enum, true },
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, fp.EnumDefault)
}

func TestEnumDefaultHonorsProto2DeclaredOverride(t *testing.T) {
	enum := &schema.EnumContext{
		Name: "Status",
		Values: []schema.EnumValueContext{
			{Name: "STATUS_UNKNOWN", Number: 0},
			{Name: "STATUS_OK", Number: 1},
		},
		DefaultIndex: 0,
	}
	fp, err := plan.BuildFieldPlan(schema.FieldContext{
		Number: 1, Name: "status", Kind: schema.EnumKind, TypeName: "Status",
		Cardinality: schema.Optional, Syntax: schema.Proto2, DeclaredDefault: "STATUS_OK",
		ResolveEnum: func(name string) (*schema.EnumContext, bool) { return enum, true },
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, fp.EnumDefault)
}

func TestOneofPlanAssignsDistinctGoNamesAndSelfReference(t *testing.T) {
	idx0 := 0
	mc := &schema.MessageContext{
		Name:   "Value",
		Oneofs: []schema.OneofContext{{Name: "kind"}},
		Fields: []schema.FieldContext{
			{Number: 1, Name: "null_value", Kind: schema.EnumKind, TypeName: "NullValue",
				OneofIndex: &idx0, Syntax: schema.Proto3,
				ResolveEnum: func(string) (*schema.EnumContext, bool) {
					return &schema.EnumContext{Name: "NullValue", Values: []schema.EnumValueContext{{Name: "NULL_VALUE", Number: 0}}}, true
				}},
			{Number: 2, Name: "list_value", Kind: schema.MessageKind, TypeName: "Value",
				OneofIndex: &idx0, Syntax: schema.Proto3, ContainingMessage: "Value"},
		},
	}
	op, err := plan.BuildOneofPlan(mc, 0)
	require.NoError(t, err)
	require.Len(t, op.Variants, 2)
	assert.Equal(t, "NullValue", op.Variants[0].GoName)
	assert.Equal(t, "ListValue", op.Variants[1].GoName)
	assert.False(t, op.Variants[0].SelfReferential)
	assert.True(t, op.Variants[1].SelfReferential, "a Value variant holding a Value is self-referential")
	assert.Equal(t, "kind", op.Variants[0].Plan.OneofName)
}

func TestOneofPlanRenamesReservedFieldNames(t *testing.T) {
	idx0 := 0
	mc := &schema.MessageContext{
		Name:   "Any",
		Oneofs: []schema.OneofContext{{Name: "payload"}},
		Fields: []schema.FieldContext{
			{Number: 1, Name: "type", Kind: schema.StringKind, OneofIndex: &idx0, Syntax: schema.Proto3},
			{Number: 2, Name: "box", Kind: schema.BytesKind, OneofIndex: &idx0, Syntax: schema.Proto3},
		},
	}
	op, err := plan.BuildOneofPlan(mc, 0)
	require.NoError(t, err)
	require.Len(t, op.Variants, 2)
	assert.Equal(t, "FieldType", op.Variants[0].GoName)
	assert.Equal(t, "FieldBox", op.Variants[1].GoName)
}

func TestOneofPlanRenamesCollidingVariantNames(t *testing.T) {
	idx0 := 0
	mc := &schema.MessageContext{
		Name:   "Msg",
		Oneofs: []schema.OneofContext{{Name: "which"}},
		Fields: []schema.FieldContext{
			{Number: 1, Name: "foo_bar", Kind: schema.Int32Kind, OneofIndex: &idx0, Syntax: schema.Proto3},
			{Number: 2, Name: "FooBar", Kind: schema.StringKind, OneofIndex: &idx0, Syntax: schema.Proto3},
		},
	}
	op, err := plan.BuildOneofPlan(mc, 0)
	require.NoError(t, err)
	require.Len(t, op.Variants, 2)
	assert.NotEqual(t, op.Variants[0].GoName, op.Variants[1].GoName)
}
