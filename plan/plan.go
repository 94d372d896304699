// Package plan turns a schema.FieldContext into the concrete decisions a
// generated accessor needs: which Go representation backs the field, what
// its wire type and default are, and how its has/get/set/mut, write, and
// size operations should behave. It performs no codegen and touches no
// reflection; it is pure analysis over schema data.
package plan

import (
	"fmt"

	"github.com/wireproto/wireproto/schema"
	"github.com/wireproto/wireproto/wire"
)

// RepKind is the top-level shape a field takes, independent of its scalar
// kind: singular, repeated, map, or one variant of a oneof.
type RepKind int

const (
	Singular RepKind = iota
	RepeatedKind
	MapKind
	OneofVariant
)

func (k RepKind) String() string {
	switch k {
	case Singular:
		return "singular"
	case RepeatedKind:
		return "repeated"
	case MapKind:
		return "map"
	case OneofVariant:
		return "oneof_variant"
	default:
		return "invalid"
	}
}

// Representation is the Go storage strategy for a singular field's value:
// whether presence is tracked at all, and if so, whether the holder
// retains its allocation across Clear.
type Representation int

const (
	// Bare: proto3 scalar/string/bytes field outside any oneof. No
	// presence bit; "unset" and "set to zero value" are indistinguishable,
	// matching proto3 semantics.
	Bare Representation = iota
	// InlineOptional: proto2 scalar field, or a oneof's non-message
	// variant. singular.Inline[T].
	InlineOptional
	// OwnedOptional: proto2 string/bytes field, or any message-kind
	// singular field regardless of syntax. singular.Owned[T].
	OwnedOptional
)

func (r Representation) String() string {
	switch r {
	case Bare:
		return "bare"
	case InlineOptional:
		return "inline_optional"
	case OwnedOptional:
		return "owned_optional"
	default:
		return "invalid"
	}
}

// FieldPlan is the complete set of decisions BuildFieldPlan makes about one
// field.
type FieldPlan struct {
	Number int32
	Name   string

	ProtoKind   schema.Kind
	Cardinality schema.Cardinality
	WireType    wire.Type

	RepKind        RepKind
	Representation Representation

	// Packed is the effective packed-or-not decision for a repeated
	// scalar field: true only if Cardinality is Repeated, Kind.IsPackable()
	// is true, and (Syntax is Proto3 and Packed != false) or (Syntax is
	// Proto2 and Packed == true). See EffectivePacked.
	Packed bool

	// FixedWidth is 4 or 8 for fixed32/sfixed32/float and
	// fixed64/sfixed64/double respectively, enabling a packed-size
	// fast path that multiplies instead of summing per-element varint
	// sizes; 0 for every other kind.
	FixedWidth int

	// TypeName carries the resolved message/enum type name through for
	// MessageKind/GroupKind/EnumKind fields.
	TypeName string

	// EnumDefault holds the resolved default ordinal for an EnumKind
	// field (see enum.go); zero for non-enum fields.
	EnumDefault int32

	// DeclaredDefault is the raw proto2 textual default, copied through
	// from the FieldContext for representation purposes (e.g. a string
	// field's compiled-in default is this value rather than "").
	DeclaredDefault string

	// OneofName names the oneof this field is a variant of; empty
	// otherwise.
	OneofName string

	// MapKeyPlan/MapValuePlan describe a map field's synthetic key/value
	// sub-fields (always field numbers wirecodec.MapKeyFieldNumber and
	// MapValueFieldNumber on the entry message), non-nil iff RepKind is
	// MapKind.
	MapKeyPlan   *FieldPlan
	MapValuePlan *FieldPlan
}

// HasPresence reports whether this field supports a distinct has_x()
// query, i.e. its representation tracks presence at all. Bare proto3
// scalars do not: "set to the zero value" and "never set" are the same
// wire behavior (the field is omitted either way).
func (p FieldPlan) HasPresence() bool {
	return p.Representation != Bare
}

// typeLabel is the proto-source spelling of the field's element type:
// the named type for messages and enums, the scalar keyword otherwise.
func (p FieldPlan) typeLabel() string {
	if p.TypeName != "" {
		return p.TypeName
	}
	return p.ProtoKind.String()
}

// Definition renders the field the way its proto-source declaration would
// read, for diagnostics: "repeated int32 scores = 3",
// "map<string, int32> counts = 4", "required int32 id = 1".
func (p FieldPlan) Definition() string {
	switch p.RepKind {
	case MapKind:
		return fmt.Sprintf("map<%s, %s> %s = %d",
			p.MapKeyPlan.typeLabel(), p.MapValuePlan.typeLabel(), p.Name, p.Number)
	case RepeatedKind:
		return fmt.Sprintf("repeated %s %s = %d", p.typeLabel(), p.Name, p.Number)
	default:
		switch p.Cardinality {
		case schema.Required:
			return fmt.Sprintf("required %s %s = %d", p.typeLabel(), p.Name, p.Number)
		case schema.Optional:
			if p.RepKind == Singular && p.Representation != Bare {
				return fmt.Sprintf("optional %s %s = %d", p.typeLabel(), p.Name, p.Number)
			}
		}
		return fmt.Sprintf("%s %s = %d", p.typeLabel(), p.Name, p.Number)
	}
}

// nativeWireType is the wire type a field of the given kind uses outside
// of the packed-repeated representation.
func nativeWireType(k schema.Kind) wire.Type {
	switch k {
	case schema.Int32Kind, schema.Int64Kind, schema.Uint32Kind, schema.Uint64Kind,
		schema.Sint32Kind, schema.Sint64Kind, schema.BoolKind, schema.EnumKind:
		return wire.VarintType
	case schema.Fixed32Kind, schema.Sfixed32Kind, schema.FloatKind:
		return wire.Fixed32Type
	case schema.Fixed64Kind, schema.Sfixed64Kind, schema.DoubleKind:
		return wire.Fixed64Type
	case schema.StringKind, schema.BytesKind, schema.MessageKind:
		return wire.BytesType
	case schema.GroupKind:
		return wire.StartGroup
	default:
		return wire.VarintType
	}
}

func fixedWidth(k schema.Kind) int {
	switch k {
	case schema.Fixed32Kind, schema.Sfixed32Kind, schema.FloatKind:
		return 4
	case schema.Fixed64Kind, schema.Sfixed64Kind, schema.DoubleKind:
		return 8
	default:
		return 0
	}
}

// EffectivePacked resolves a field's effective packed-or-not decision:
// proto3 repeated scalar fields are packed by default unless explicitly
// turned off; proto2 repeated scalar fields are unpacked by default unless
// explicitly turned on. Non-packable kinds are never packed regardless of
// the option.
func EffectivePacked(syntax schema.Syntax, k schema.Kind, declared *bool) bool {
	if !k.IsPackable() {
		return false
	}
	if declared != nil {
		return *declared
	}
	return syntax == schema.Proto3
}

// BuildFieldPlan analyzes fc and returns the full decision record for it.
func BuildFieldPlan(fc schema.FieldContext) (FieldPlan, error) {
	p := FieldPlan{
		Number:          fc.Number,
		Name:            fc.Name,
		ProtoKind:       fc.Kind,
		Cardinality:     fc.Cardinality,
		TypeName:        fc.TypeName,
		DeclaredDefault: fc.DeclaredDefault,
	}

	if fc.OneofIndex != nil {
		p.RepKind = OneofVariant
	} else if fc.IsMapEntry {
		p.RepKind = MapKind
	} else if fc.Cardinality == schema.Repeated {
		p.RepKind = RepeatedKind
	} else {
		p.RepKind = Singular
	}

	switch p.RepKind {
	case MapKind:
		if fc.ResolveMessage == nil {
			return FieldPlan{}, fmt.Errorf("plan: field %q claims IsMapEntry but has no ResolveMessage resolver", fc.Name)
		}
		msg, ok := fc.ResolveMessage(fc.TypeName)
		if !ok || len(msg.Fields) != 2 {
			return FieldPlan{}, fmt.Errorf("plan: field %q claims IsMapEntry but %q is not a 2-field map-entry message", fc.Name, fc.TypeName)
		}
		keyFC, valFC := msg.Fields[0], msg.Fields[1]
		keyPlan, err := BuildFieldPlan(keyFC)
		if err != nil {
			return FieldPlan{}, err
		}
		valPlan, err := BuildFieldPlan(valFC)
		if err != nil {
			return FieldPlan{}, err
		}
		p.WireType = wire.BytesType
		p.MapKeyPlan = &keyPlan
		p.MapValuePlan = &valPlan
		return p, nil

	case RepeatedKind:
		p.WireType = nativeWireType(fc.Kind)
		p.FixedWidth = fixedWidth(fc.Kind)
		p.Packed = EffectivePacked(fc.Syntax, fc.Kind, fc.Packed)
		if fc.Kind == schema.EnumKind {
			if err := resolveEnumDefault(&p, fc); err != nil {
				return FieldPlan{}, err
			}
		}
		return p, nil

	default: // Singular, OneofVariant
		p.WireType = nativeWireType(fc.Kind)
		p.FixedWidth = fixedWidth(fc.Kind)
		p.Representation = singularRepresentation(fc)
		// OneofName is left blank here: resolving a field's OneofIndex to
		// its declaring OneofContext.Name requires the containing
		// MessageContext, which BuildFieldPlan does not take (it analyzes
		// one field at a time). BuildOneofPlan fills it in for every
		// variant it enumerates.
		if fc.Kind == schema.EnumKind {
			if err := resolveEnumDefault(&p, fc); err != nil {
				return FieldPlan{}, err
			}
		}
		return p, nil
	}
}

// singularRepresentation decides the storage strategy for a singular (or
// oneof-variant) field. Message/group fields are always OwnedOptional
// regardless of syntax, since proto3 message fields track presence even
// though proto3 scalars don't. Oneof variants always track presence (the
// enclosing oneof does it for them) and so are never Bare. Outside a
// oneof, proto3 scalars/strings/bytes are bare; proto2 string/bytes get
// OwnedOptional (so Clear can retain the backing buffer per
// singular.Owned's contract) and proto2 scalars get InlineOptional.
func singularRepresentation(fc schema.FieldContext) Representation {
	switch {
	case fc.Kind == schema.MessageKind || fc.Kind == schema.GroupKind:
		return OwnedOptional
	case fc.OneofIndex != nil:
		return InlineOptional
	case fc.Syntax == schema.Proto3:
		return Bare
	case fc.Kind == schema.StringKind || fc.Kind == schema.BytesKind:
		return OwnedOptional
	default:
		return InlineOptional
	}
}
