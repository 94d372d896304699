// Package schema describes the typed descriptor surface a parser or code
// generator would hand to the field planner: the shape of one field,
// message, enum, or oneof, without any reflection or wire-format knowledge
// of its own. Kind and Cardinality mirror the canonical
// google.protobuf.Field.Kind and .Cardinality enumerations.
package schema

// Syntax distinguishes proto2 from proto3 field-presence rules.
type Syntax int

const (
	Proto2 Syntax = iota
	Proto3
)

func (s Syntax) String() string {
	if s == Proto3 {
		return "proto3"
	}
	return "proto2"
}

// Cardinality mirrors google.protobuf.Field.Cardinality.
type Cardinality int

const (
	Optional Cardinality = iota + 1
	Required
	Repeated
)

func (c Cardinality) String() string {
	switch c {
	case Optional:
		return "optional"
	case Required:
		return "required"
	case Repeated:
		return "repeated"
	default:
		return "invalid"
	}
}

// Kind mirrors google.protobuf.Field.Kind: the wire-relevant scalar/
// message/enum/group taxonomy a field declares itself as.
type Kind int

const (
	DoubleKind Kind = iota + 1
	FloatKind
	Int64Kind
	Uint64Kind
	Int32Kind
	Fixed64Kind
	Fixed32Kind
	BoolKind
	StringKind
	GroupKind
	MessageKind
	BytesKind
	Uint32Kind
	EnumKind
	Sfixed32Kind
	Sfixed64Kind
	Sint32Kind
	Sint64Kind
)

func (k Kind) String() string {
	switch k {
	case DoubleKind:
		return "double"
	case FloatKind:
		return "float"
	case Int64Kind:
		return "int64"
	case Uint64Kind:
		return "uint64"
	case Int32Kind:
		return "int32"
	case Fixed64Kind:
		return "fixed64"
	case Fixed32Kind:
		return "fixed32"
	case BoolKind:
		return "bool"
	case StringKind:
		return "string"
	case GroupKind:
		return "group"
	case MessageKind:
		return "message"
	case BytesKind:
		return "bytes"
	case Uint32Kind:
		return "uint32"
	case EnumKind:
		return "enum"
	case Sfixed32Kind:
		return "sfixed32"
	case Sfixed64Kind:
		return "sfixed64"
	case Sint32Kind:
		return "sint32"
	case Sint64Kind:
		return "sint64"
	default:
		return "unknown"
	}
}

// IsPackable reports whether repeated fields of this kind may use the
// packed wire representation: every scalar numeric kind except the two
// length-delimited ones (string, bytes) and the two message-shaped ones
// (message, group), which are never packable.
func (k Kind) IsPackable() bool {
	switch k {
	case StringKind, BytesKind, MessageKind, GroupKind:
		return false
	default:
		return true
	}
}

// MessageContext describes one message type: its fields and oneofs, plus
// whatever a resolver needs to look up nested/external types by name.
type MessageContext struct {
	Name   string
	Syntax Syntax
	Fields []FieldContext
	Oneofs []OneofContext
}

// EnumContext describes one enum type: its declared values and which one
// is the zero (default) value.
type EnumContext struct {
	Name         string
	Values       []EnumValueContext
	DefaultIndex int // index into Values holding the default (proto3: must be 0)
}

// EnumValueContext is one named, numbered enum constant.
type EnumValueContext struct {
	Name   string
	Number int32
}

// OneofContext describes one oneof group: the set of field numbers whose
// declaring FieldContext.OneofIndex point back at it.
type OneofContext struct {
	Name string
}

// FieldContext is the full external description of a single field that
// BuildFieldPlan consumes. It is deliberately a plain data struct, not an
// interface: this repo has no live descriptor-bytes parser (out of scope),
// so FieldContext values are always hand-constructed, either by a test or
// by a generated-looking testmsgs package.
type FieldContext struct {
	Number      int32
	Name        string
	Kind        Kind
	Cardinality Cardinality

	// TypeName names the message or enum type this field refers to, when
	// Kind is MessageKind, GroupKind, or EnumKind. Empty for scalar kinds.
	TypeName string

	// ContainingMessage is the name of the message declaring this field,
	// used for diagnostics and for resolving a oneof's sibling fields.
	ContainingMessage string

	// Syntax is inherited from the containing message; it governs how a
	// singular field's presence is represented.
	Syntax Syntax

	// Packed is the field's declared [packed=...] option, if any; its
	// effective value still depends on Syntax and Kind.IsPackable() (see
	// plan.EffectivePacked).
	Packed *bool

	// OneofIndex, if non-nil, names which OneofContext in the containing
	// message this field belongs to.
	OneofIndex *int

	// IsMapEntry marks this field as a repeated message field whose
	// TypeName resolves to a synthetic two-field (1=key, 2=value) map-entry
	// message, which the planner reclassifies as a map.
	IsMapEntry bool

	// DeclaredDefault is the proto2 textual default (e.g. "true", "7",
	// "hello"), empty when the field has none. Never used in proto3,
	// where defaults are always the type's zero value.
	DeclaredDefault string

	// ResolveMessage looks up the MessageContext named by TypeName. Nil
	// unless Kind is MessageKind or GroupKind.
	ResolveMessage func(name string) (*MessageContext, bool)

	// ResolveEnum looks up the EnumContext named by TypeName. Nil unless
	// Kind is EnumKind.
	ResolveEnum func(name string) (*EnumContext, bool)
}
