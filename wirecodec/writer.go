package wirecodec

import (
	"math"

	"github.com/wireproto/wireproto/wire"
)

// Writer appends wire-format bytes to an internal buffer. Unlike Reader, it
// never needs a limit stack: every length-delimited value is written size
// first (the caller computed it during the size pass), so there is no
// speculative-length buffer shifting to account for.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer appending to an empty buffer.
func NewWriter() *Writer { return &Writer{} }

// NewWriterSize returns a Writer whose buffer is pre-allocated to at least
// size bytes, for callers that already know the encoded length (via the
// size calculator) before writing.
func NewWriterSize(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the accumulated output. The returned slice aliases the
// Writer's internal buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Reset empties the buffer for reuse.
func (w *Writer) Reset() { w.buf = w.buf[:0] }

func (w *Writer) WriteRawVarint64(v uint64) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

func (w *Writer) WriteRawVarint32(v uint32) { w.WriteRawVarint64(uint64(v)) }

func (w *Writer) WriteTag(num wire.Number, typ wire.Type) {
	w.WriteRawVarint64(wire.EncodeTag(num, typ))
}

func (w *Writer) writeRawFixed32(v uint32) {
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func (w *Writer) writeRawFixed64(v uint64) {
	w.buf = append(w.buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// Scalar writes, no-tag variants: these append only the value, for use
// inside packed repeated fields and map entries where the caller already
// wrote the enclosing tag.

func (w *Writer) WriteInt32NoTag(v int32)   { w.WriteRawVarint64(uint64(int64(v))) }
func (w *Writer) WriteInt64NoTag(v int64)   { w.WriteRawVarint64(uint64(v)) }
func (w *Writer) WriteUint32NoTag(v uint32) { w.WriteRawVarint32(v) }
func (w *Writer) WriteUint64NoTag(v uint64) { w.WriteRawVarint64(v) }
func (w *Writer) WriteSint32NoTag(v int32)  { w.WriteRawVarint32(wire.EncodeZigZag32(v)) }
func (w *Writer) WriteSint64NoTag(v int64)  { w.WriteRawVarint64(wire.EncodeZigZag64(v)) }
func (w *Writer) WriteBoolNoTag(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}
func (w *Writer) WriteFixed32NoTag(v uint32) { w.writeRawFixed32(v) }
func (w *Writer) WriteFixed64NoTag(v uint64) { w.writeRawFixed64(v) }
func (w *Writer) WriteSfixed32NoTag(v int32) { w.writeRawFixed32(uint32(v)) }
func (w *Writer) WriteSfixed64NoTag(v int64) { w.writeRawFixed64(uint64(v)) }
func (w *Writer) WriteFloatNoTag(v float32)  { w.writeRawFixed32(math.Float32bits(v)) }
func (w *Writer) WriteDoubleNoTag(v float64) { w.writeRawFixed64(math.Float64bits(v)) }

func (w *Writer) WriteBytesNoTag(v []byte) {
	w.WriteRawVarint32(uint32(len(v)))
	w.buf = append(w.buf, v...)
}

func (w *Writer) WriteStringNoTag(v string) {
	w.WriteRawVarint32(uint32(len(v)))
	w.buf = append(w.buf, v...)
}

// Tagged writes: each prefixes the no-tag write with its field tag.

func (w *Writer) WriteInt32(num wire.Number, v int32) {
	w.WriteTag(num, wire.VarintType)
	w.WriteInt32NoTag(v)
}
func (w *Writer) WriteInt64(num wire.Number, v int64) {
	w.WriteTag(num, wire.VarintType)
	w.WriteInt64NoTag(v)
}
func (w *Writer) WriteUint32(num wire.Number, v uint32) {
	w.WriteTag(num, wire.VarintType)
	w.WriteUint32NoTag(v)
}
func (w *Writer) WriteUint64(num wire.Number, v uint64) {
	w.WriteTag(num, wire.VarintType)
	w.WriteUint64NoTag(v)
}
func (w *Writer) WriteSint32(num wire.Number, v int32) {
	w.WriteTag(num, wire.VarintType)
	w.WriteSint32NoTag(v)
}
func (w *Writer) WriteSint64(num wire.Number, v int64) {
	w.WriteTag(num, wire.VarintType)
	w.WriteSint64NoTag(v)
}
func (w *Writer) WriteBool(num wire.Number, v bool) {
	w.WriteTag(num, wire.VarintType)
	w.WriteBoolNoTag(v)
}
func (w *Writer) WriteFixed32(num wire.Number, v uint32) {
	w.WriteTag(num, wire.Fixed32Type)
	w.WriteFixed32NoTag(v)
}
func (w *Writer) WriteFixed64(num wire.Number, v uint64) {
	w.WriteTag(num, wire.Fixed64Type)
	w.WriteFixed64NoTag(v)
}
func (w *Writer) WriteSfixed32(num wire.Number, v int32) {
	w.WriteTag(num, wire.Fixed32Type)
	w.WriteSfixed32NoTag(v)
}
func (w *Writer) WriteSfixed64(num wire.Number, v int64) {
	w.WriteTag(num, wire.Fixed64Type)
	w.WriteSfixed64NoTag(v)
}
func (w *Writer) WriteFloat(num wire.Number, v float32) {
	w.WriteTag(num, wire.Fixed32Type)
	w.WriteFloatNoTag(v)
}
func (w *Writer) WriteDouble(num wire.Number, v float64) {
	w.WriteTag(num, wire.Fixed64Type)
	w.WriteDoubleNoTag(v)
}
func (w *Writer) WriteBytes(num wire.Number, v []byte) {
	w.WriteTag(num, wire.BytesType)
	w.WriteBytesNoTag(v)
}
func (w *Writer) WriteString(num wire.Number, v string) {
	w.WriteTag(num, wire.BytesType)
	w.WriteStringNoTag(v)
}

// WriteMessage writes a length-delimited sub-message tagged with num. size
// must equal the number of bytes encode will append; callers obtain it
// from the size pass (a nested message's ProtoSize, or the size
// calculator's helpers) before calling this.
func (w *Writer) WriteMessage(num wire.Number, size int, encode func(*Writer)) {
	w.WriteTag(num, wire.BytesType)
	w.WriteRawVarint32(uint32(size))
	encode(w)
}

// WriteRawUnknown appends one preserved unknown value verbatim, tagged with
// num, dispatching on which of the four wire shapes it carries.
func (w *Writer) WriteRawUnknown(num wire.Number, typ wire.Type, fixed32 uint32, fixed64 uint64, varint uint64, bytes []byte) {
	w.WriteTag(num, typ)
	switch typ {
	case wire.VarintType:
		w.WriteRawVarint64(varint)
	case wire.Fixed32Type:
		w.writeRawFixed32(fixed32)
	case wire.Fixed64Type:
		w.writeRawFixed64(fixed64)
	case wire.BytesType:
		w.WriteBytesNoTag(bytes)
	}
}
