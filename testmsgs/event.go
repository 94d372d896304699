package testmsgs

import (
	"github.com/wireproto/wireproto/protomsg"
	"github.com/wireproto/wireproto/sizecache"
	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/wire"
	"github.com/wireproto/wireproto/wirecodec"
)

// Event exercises the OneofVariant representation, including the
// self-referential case plan.BuildOneofPlan flags (Event_Nested holds an
// *Event, the oneof's own containing message). The per-variant wrapper
// structs are named Event_<Variant> behind a shared marker interface,
// the layout protoc-gen-go emits for a oneof.
type Event struct {
	Id      int32
	Payload isEvent_Payload

	unknownFields unknown.Fields
	sizeCache     sizecache.CachedSize
}

// isEvent_Payload is the unexported marker interface every oneof variant
// wrapper implements.
type isEvent_Payload interface {
	isEvent_Payload()
}

type Event_Text struct{ Text string }
type Event_Count struct{ Count int32 }
type Event_Nested struct{ Nested *Event }

func (*Event_Text) isEvent_Payload()   {}
func (*Event_Count) isEvent_Payload()  {}
func (*Event_Nested) isEvent_Payload() {}

func (m *Event) GetText() string {
	if v, ok := m.Payload.(*Event_Text); ok {
		return v.Text
	}
	return ""
}

func (m *Event) GetCount() int32 {
	if v, ok := m.Payload.(*Event_Count); ok {
		return v.Count
	}
	return 0
}

func (m *Event) GetNested() *Event {
	if v, ok := m.Payload.(*Event_Nested); ok {
		return v.Nested
	}
	return nil
}

func (m *Event) ProtoReset() { *m = Event{} }

func (m *Event) UnknownFields() *unknown.Fields { return &m.unknownFields }

func (m *Event) RequiredFieldsSet() bool {
	if nested := m.GetNested(); nested != nil {
		return nested.RequiredFieldsSet()
	}
	return true
}

func (m *Event) ProtoSize() int {
	size := 0
	if m.Id != 0 {
		size += wirecodec.SizeField(1, wirecodec.SizeVarint32(m.Id))
	}
	switch v := m.Payload.(type) {
	case *Event_Text:
		size += wirecodec.SizeField(2, wirecodec.SizeStringNoTag(v.Text))
	case *Event_Count:
		size += wirecodec.SizeField(3, wirecodec.SizeVarint32(v.Count))
	case *Event_Nested:
		nestedSize := v.Nested.ProtoSize()
		size += wirecodec.SizeWithLengthDelimiter(4, nestedSize)
	}
	size += wirecodec.SizeUnknownFields(&m.unknownFields)
	m.sizeCache.Set(uint32(size))
	return size
}

func (m *Event) MarshalFields(w *wirecodec.Writer) error {
	if m.Id != 0 {
		w.WriteInt32(1, m.Id)
	}
	switch v := m.Payload.(type) {
	case *Event_Text:
		w.WriteString(2, v.Text)
	case *Event_Count:
		w.WriteInt32(3, v.Count)
	case *Event_Nested:
		nestedSize := v.Nested.ProtoSize()
		w.WriteMessage(4, nestedSize, func(inner *wirecodec.Writer) {
			v.Nested.MarshalFields(inner)
		})
	}
	writeUnknown(w, &m.unknownFields)
	return nil
}

func (m *Event) UnmarshalFields(r *wirecodec.Reader) error {
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
			m.Id = v
		case num == 2 && typ == wire.BytesType:
			var s string
			if err := r.ReadStringInto(&s); err != nil {
				return err
			}
			m.Payload = &Event_Text{Text: s}
		case num == 3 && typ == wire.VarintType:
			v, err := r.ReadInt32()
			if err != nil {
				return err
			}
			m.Payload = &Event_Count{Count: v}
		case num == 4 && typ == wire.BytesType:
			nested := &Event{}
			err := wirecodec.ReadMessageInto(r, func(rr *wirecodec.Reader) error {
				return nested.UnmarshalFields(rr)
			})
			if err != nil {
				return err
			}
			m.Payload = &Event_Nested{Nested: nested}
		default:
			if err := r.HandleUnrecognized(num, typ, &m.unknownFields); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Event) ProtoClone() protomsg.Message {
	clone := &Event{Id: m.Id, unknownFields: m.unknownFields.Clone()}
	switch v := m.Payload.(type) {
	case *Event_Text:
		clone.Payload = &Event_Text{Text: v.Text}
	case *Event_Count:
		clone.Payload = &Event_Count{Count: v.Count}
	case *Event_Nested:
		clone.Payload = &Event_Nested{Nested: v.Nested.ProtoClone().(*Event)}
	}
	return clone
}
