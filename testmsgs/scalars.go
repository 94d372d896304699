package testmsgs

import (
	"github.com/wireproto/wireproto/protomsg"
	"github.com/wireproto/wireproto/singular"
	"github.com/wireproto/wireproto/sizecache"
	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/wire"
	"github.com/wireproto/wireproto/wirecodec"
)

// Proto3Scalars exercises the Bare representation (plan.Bare): every field
// here is a proto3 scalar with no presence tracking, stored as a plain
// (non-pointer, non-wrapper) struct field.
type Proto3Scalars struct {
	Name   string
	Age    int32
	Active bool
	Ratio  float64
	Status Status

	unknownFields unknown.Fields
	sizeCache     sizecache.CachedSize
}

func (m *Proto3Scalars) ProtoReset() { *m = Proto3Scalars{} }

func (m *Proto3Scalars) UnknownFields() *unknown.Fields { return &m.unknownFields }

func (m *Proto3Scalars) RequiredFieldsSet() bool { return true } // proto3 has no required fields

func (m *Proto3Scalars) ProtoClone() protomsg.Message {
	clone := *m
	clone.sizeCache = sizecache.CachedSize{}
	clone.unknownFields = m.unknownFields.Clone()
	return &clone
}

func (m *Proto3Scalars) ProtoSize() int {
	size := 0
	if m.Name != "" {
		size += wirecodec.SizeField(1, wirecodec.SizeStringNoTag(m.Name))
	}
	if m.Age != 0 {
		size += wirecodec.SizeField(2, wirecodec.SizeVarint32(m.Age))
	}
	if m.Active {
		size += wirecodec.SizeField(3, wirecodec.SizeBool())
	}
	if m.Ratio != 0 {
		size += wirecodec.SizeField(4, wirecodec.SizeFixed64())
	}
	if m.Status != Status_STATUS_UNKNOWN {
		size += wirecodec.SizeField(5, wirecodec.SizeVarint32(int32(m.Status)))
	}
	size += wirecodec.SizeUnknownFields(&m.unknownFields)
	m.sizeCache.Set(uint32(size))
	return size
}

func (m *Proto3Scalars) MarshalFields(w *wirecodec.Writer) error {
	if m.Name != "" {
		w.WriteString(1, m.Name)
	}
	if m.Age != 0 {
		w.WriteInt32(2, m.Age)
	}
	if m.Active {
		w.WriteBool(3, m.Active)
	}
	if m.Ratio != 0 {
		w.WriteDouble(4, m.Ratio)
	}
	if m.Status != Status_STATUS_UNKNOWN {
		w.WriteInt32(5, int32(m.Status))
	}
	writeUnknown(w, &m.unknownFields)
	return nil
}

func (m *Proto3Scalars) UnmarshalFields(r *wirecodec.Reader) error {
	for !r.EOF() {
		num, typ, err := r.ReadTagUnpack()
		if err != nil {
			return err
		}
		switch {
		case num == 1 && typ == wire.BytesType:
			if err := r.ReadStringInto(&m.Name); err != nil {
				return err
			}
		case num == 2 && typ == wire.VarintType:
			v, err := r.ReadInt32()
			if err != nil {
				return err
			}
			m.Age = v
		case num == 3 && typ == wire.VarintType:
			v, err := r.ReadBool()
			if err != nil {
				return err
			}
			m.Active = v
		case num == 4 && typ == wire.Fixed64Type:
			v, err := r.ReadDouble()
			if err != nil {
				return err
			}
			m.Ratio = v
		case num == 5 && typ == wire.VarintType:
			v, err := r.ReadInt32()
			if err != nil {
				return err
			}
			m.Status = Status(v)
		default:
			if err := r.HandleUnrecognized(num, typ, &m.unknownFields); err != nil {
				return err
			}
		}
	}
	return nil
}

// Proto2Scalars exercises the two proto2 presence representations:
// InlineOptional for scalars, which carry presence and fall back to a
// compiled-in default when unset (field 2's default is 42), and
// OwnedOptional for strings, whose backing allocation survives Clear so
// the next set reuses it.
type Proto2Scalars struct {
	Id    int32 // required, field 1
	idSet bool

	Age  singular.Inline[int32] // optional, field 2, default 42
	Note singular.Owned[string] // optional, field 3

	unknownFields unknown.Fields
	sizeCache     sizecache.CachedSize
}

const proto2ScalarsAgeDefault int32 = 42

func (m *Proto2Scalars) ProtoReset() { *m = Proto2Scalars{} }

func (m *Proto2Scalars) UnknownFields() *unknown.Fields { return &m.unknownFields }

func (m *Proto2Scalars) RequiredFieldsSet() bool { return m.idSet }

func (m *Proto2Scalars) SetId(v int32) { m.Id = v; m.idSet = true }
func (m *Proto2Scalars) HasId() bool   { return m.idSet }

func (m *Proto2Scalars) GetAge() int32 {
	if m.Age.IsSome() {
		return *m.Age.AsRef()
	}
	return proto2ScalarsAgeDefault
}
func (m *Proto2Scalars) HasAge() bool   { return m.Age.IsSome() }
func (m *Proto2Scalars) SetAge(v int32) { m.Age.Set(v) }
func (m *Proto2Scalars) ClearAge()      { m.Age.Clear() }

func (m *Proto2Scalars) GetNote() string {
	if v := m.Note.AsRef(); v != nil {
		return *v
	}
	return ""
}
func (m *Proto2Scalars) HasNote() bool    { return m.Note.IsSome() }
func (m *Proto2Scalars) SetNote(v string) { m.Note.Set(v) }
func (m *Proto2Scalars) ClearNote()       { m.Note.Clear() }

func (m *Proto2Scalars) ProtoSize() int {
	size := 0
	if m.idSet {
		size += wirecodec.SizeField(1, wirecodec.SizeVarint32(m.Id))
	}
	if m.Age.IsSome() {
		size += wirecodec.SizeField(2, wirecodec.SizeVarint32(*m.Age.AsRef()))
	}
	if v := m.Note.AsRef(); v != nil {
		size += wirecodec.SizeField(3, wirecodec.SizeStringNoTag(*v))
	}
	size += wirecodec.SizeUnknownFields(&m.unknownFields)
	m.sizeCache.Set(uint32(size))
	return size
}

func (m *Proto2Scalars) MarshalFields(w *wirecodec.Writer) error {
	if m.idSet {
		w.WriteInt32(1, m.Id)
	}
	if v := m.Age.AsRef(); v != nil {
		w.WriteInt32(2, *v)
	}
	if v := m.Note.AsRef(); v != nil {
		w.WriteString(3, *v)
	}
	writeUnknown(w, &m.unknownFields)
	return nil
}

func (m *Proto2Scalars) UnmarshalFields(r *wirecodec.Reader) error {
	for !r.EOF() {
		num, typ, err := r.ReadTagUnpack()
		if err != nil {
			return err
		}
		switch {
		case num == 1 && typ == wire.VarintType:
			v, err := r.ReadInt32()
			if err != nil {
				return err
			}
			m.SetId(v)
		case num == 2 && typ == wire.VarintType:
			v, err := r.ReadInt32()
			if err != nil {
				return err
			}
			m.SetAge(v)
		case num == 3 && typ == wire.BytesType:
			if err := r.ReadStringInto(m.Note.SetDefault()); err != nil {
				return err
			}
		default:
			if err := r.HandleUnrecognized(num, typ, &m.unknownFields); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeUnknown appends every preserved unknown value after the known
// fields, in first-seen field-number order.
func writeUnknown(w *wirecodec.Writer, fields *unknown.Fields) {
	fields.Range(func(num wire.Number, values *unknown.Values) bool {
		values.Range(func(v unknown.Value) bool {
			w.WriteRawUnknown(num, v.WireType(), v.Fixed32, v.Fixed64, v.Varint, v.LengthDelimited)
			return true
		})
		return true
	})
}
