package testmsgs

import (
	"github.com/wireproto/wireproto/sizecache"
	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/werror"
	"github.com/wireproto/wireproto/wire"
	"github.com/wireproto/wireproto/wirecodec"
)

// Repeated exercises both the packed (Scores, Samples) and never-packable
// (Tags) repeated representations, per plan.EffectivePacked: Tags is a
// string field and therefore always unpacked; Scores is a varint-coded
// int32 field and packed by default in proto3; Samples is a fixed32-width
// float field and uses the packed fast path's per-element-width multiply
// instead of a per-element size sum.
type Repeated struct {
	Tags    []string
	Scores  []int32
	Samples []float32

	unknownFields unknown.Fields
	sizeCache     sizecache.CachedSize
}

func (m *Repeated) ProtoReset() { *m = Repeated{} }

func (m *Repeated) UnknownFields() *unknown.Fields { return &m.unknownFields }

func (m *Repeated) RequiredFieldsSet() bool { return true }

func (m *Repeated) ProtoSize() int {
	size := 0
	for _, s := range m.Tags {
		size += wirecodec.SizeField(1, wirecodec.SizeStringNoTag(s))
	}
	size += wirecodec.SizePackedVarint(2, func(i int) int { return wirecodec.SizeVarint32(m.Scores[i]) }, len(m.Scores))
	size += wirecodec.SizePackedFixed(3, 4, len(m.Samples))
	size += wirecodec.SizeUnknownFields(&m.unknownFields)
	m.sizeCache.Set(uint32(size))
	return size
}

func (m *Repeated) MarshalFields(w *wirecodec.Writer) error {
	for _, s := range m.Tags {
		w.WriteString(1, s)
	}
	if len(m.Scores) > 0 {
		dataSize := 0
		for _, v := range m.Scores {
			dataSize += wirecodec.SizeVarint32(v)
		}
		w.WriteMessage(2, dataSize, func(inner *wirecodec.Writer) {
			for _, v := range m.Scores {
				inner.WriteInt32NoTag(v)
			}
		})
	}
	if len(m.Samples) > 0 {
		w.WriteMessage(3, 4*len(m.Samples), func(inner *wirecodec.Writer) {
			for _, v := range m.Samples {
				inner.WriteFloatNoTag(v)
			}
		})
	}
	writeUnknown(w, &m.unknownFields)
	return nil
}

func (m *Repeated) UnmarshalFields(r *wirecodec.Reader) error {
	for !r.EOF() {
		num, typ, err := r.ReadTagUnpack()
		if err != nil {
			return err
		}
		switch num {
		case 1:
			if typ != wire.BytesType {
				return unexpected(num, typ, wire.BytesType)
			}
			var s string
			if err := r.ReadStringInto(&s); err != nil {
				return err
			}
			m.Tags = append(m.Tags, s)
		case 2:
			if err := wirecodec.ReadRepeatedInto(r, typ, wire.VarintType, &m.Scores, func(rr *wirecodec.Reader) (int32, error) {
				return rr.ReadInt32()
			}); err != nil {
				return err
			}
		case 3:
			if err := wirecodec.ReadRepeatedInto(r, typ, wire.Fixed32Type, &m.Samples, func(rr *wirecodec.Reader) (float32, error) {
				return rr.ReadFloat()
			}); err != nil {
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

func unexpected(num wire.Number, got, want wire.Type) error {
	return werror.Newf(werror.UnexpectedWireType, "field %d: got %s, want %s", num, got, want)
}
