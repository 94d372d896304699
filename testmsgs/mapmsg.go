package testmsgs

import (
	"sort"

	"github.com/wireproto/wireproto/sizecache"
	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/wire"
	"github.com/wireproto/wireproto/wirecodec"
)

// MapMsg exercises a map<string,int32> field. A map field is, on the
// wire, a repeated message field whose entry message always uses field
// numbers 1 (key) and 2 (value); Go represents it as a plain map, never
// as a repeated slice of entry structs.
type MapMsg struct {
	Counts map[string]int32

	unknownFields unknown.Fields
	sizeCache     sizecache.CachedSize
}

func (m *MapMsg) ProtoReset() { *m = MapMsg{} }

func (m *MapMsg) UnknownFields() *unknown.Fields { return &m.unknownFields }

func (m *MapMsg) RequiredFieldsSet() bool { return true }

func (m *MapMsg) ProtoSize() int {
	size := 0
	for k, v := range m.Counts {
		entrySize := wirecodec.ComputeMapEntrySize(wirecodec.SizeStringNoTag(k), wirecodec.SizeVarint32(v))
		size += wirecodec.SizeWithLengthDelimiter(4, entrySize)
	}
	size += wirecodec.SizeUnknownFields(&m.unknownFields)
	m.sizeCache.Set(uint32(size))
	return size
}

func (m *MapMsg) MarshalFields(w *wirecodec.Writer) error {
	// Entries are written in sorted key order so encoding is
	// deterministic and byte comparison of equal messages is stable.
	keys := make([]string, 0, len(m.Counts))
	for k := range m.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m.Counts[k]
		entrySize := wirecodec.ComputeMapEntrySize(wirecodec.SizeStringNoTag(k), wirecodec.SizeVarint32(v))
		w.WriteMessage(4, entrySize, func(inner *wirecodec.Writer) {
			inner.WriteString(wirecodec.MapKeyFieldNumber, k)
			inner.WriteInt32(wirecodec.MapValueFieldNumber, v)
		})
	}
	writeUnknown(w, &m.unknownFields)
	return nil
}

func (m *MapMsg) UnmarshalFields(r *wirecodec.Reader) error {
	for !r.EOF() {
		num, typ, err := r.ReadTagUnpack()
		if err != nil {
			return err
		}
		if num != 4 {
			if err := r.HandleUnrecognized(num, typ, &m.unknownFields); err != nil {
				return err
			}
			continue
		}
		if typ != wire.BytesType {
			return unexpected(num, typ, wire.BytesType)
		}
		// key and val keep their zero values when either side is absent
		// from the entry, so inserting unconditionally implements the
		// default-on-missing map-entry semantics.
		var key string
		var val int32
		_, _, err = wirecodec.ReadMapEntry(r, wire.BytesType, wire.VarintType,
			func(rr *wirecodec.Reader) error { return rr.ReadStringInto(&key) },
			func(rr *wirecodec.Reader) error {
				v, err := rr.ReadInt32()
				val = v
				return err
			},
		)
		if err != nil {
			return err
		}
		if m.Counts == nil {
			m.Counts = make(map[string]int32)
		}
		m.Counts[key] = val
	}
	return nil
}
