// Package wirecodec implements the runtime codec half of the system: the
// coded-stream reader and writer, the size calculator, and the
// wire-type-validated repeated/packed/map read dispatch that generated
// message code calls per field.
package wirecodec

import (
	"math"
	"unicode/utf8"

	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/werror"
	"github.com/wireproto/wireproto/wire"
)

// DefaultRecursionLimit bounds how deeply nested messages (and groups) may
// be before a read fails with RecursionTooDeep, matching the default most
// protobuf runtimes ship with.
const DefaultRecursionLimit = 100

// Reader is a single-pass cursor over a wire-format byte slice. It is not
// safe for concurrent use: a stream belongs to exactly one caller for the
// duration of a decode.
type Reader struct {
	buf []byte
	pos int

	limitStack   []int // absolute end-offsets pushed by PushLimit
	recursion    int
	maxRecursion int

	discardUnknown bool
}

// SetDiscardUnknown configures whether unrecognized fields encountered
// while decoding are dropped instead of preserved. HandleUnrecognized
// consults it before adding to an unknown.Fields bucket.
func (r *Reader) SetDiscardUnknown(v bool) { r.discardUnknown = v }

// DiscardUnknown reports the value set by SetDiscardUnknown.
func (r *Reader) DiscardUnknown() bool { return r.discardUnknown }

// NewReader wraps buf for reading. The recursion limit defaults to
// DefaultRecursionLimit; use WithRecursionLimit to override it.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, maxRecursion: DefaultRecursionLimit}
}

// WithRecursionLimit sets the maximum nesting depth this reader will
// tolerate before IncrRecursion fails.
func (r *Reader) WithRecursionLimit(n int) *Reader {
	r.maxRecursion = n
	return r
}

// limit returns the current effective end-of-input offset: either the top
// of the limit stack, or the end of the whole buffer.
func (r *Reader) limit() int {
	if n := len(r.limitStack); n > 0 {
		return r.limitStack[n-1]
	}
	return len(r.buf)
}

// EOF reports whether the reader has consumed everything up to its current
// limit.
func (r *Reader) EOF() bool {
	return r.pos >= r.limit()
}

// Remaining returns the number of bytes left before the current limit.
func (r *Reader) Remaining() int {
	return r.limit() - r.pos
}

// PushLimit scopes subsequent reads to the next n bytes and returns an
// opaque token to restore the previous limit with PopLimit.
func (r *Reader) PushLimit(n uint64) (int, error) {
	newLimit := r.pos + int(n)
	if n > uint64(len(r.buf)) || newLimit > r.limit() || newLimit < r.pos {
		return 0, werror.New(werror.Truncated, "length-delimited field overruns enclosing limit")
	}
	old := r.limit()
	r.limitStack = append(r.limitStack, newLimit)
	return old, nil
}

// PopLimit restores the limit in effect before the matching PushLimit.
func (r *Reader) PopLimit(old int) {
	r.limitStack = r.limitStack[:len(r.limitStack)-1]
	_ = old // kept for API symmetry with the push/pop token contract
}

// IncrRecursion records entry into a nested message or group, failing once
// the configured recursion limit is exceeded.
func (r *Reader) IncrRecursion() error {
	r.recursion++
	if r.recursion > r.maxRecursion {
		return werror.New(werror.RecursionTooDeep, "exceeded max recursion depth")
	}
	return nil
}

// DecrRecursion undoes one IncrRecursion on the way back out of a nested
// message or group.
func (r *Reader) DecrRecursion() {
	r.recursion--
}

func (r *Reader) errTruncated() error {
	return werror.New(werror.Truncated, "unexpected end of input")
}

// ReadRawVarint64 reads a base-128 little-endian varint.
func (r *Reader) ReadRawVarint64() (uint64, error) {
	var result uint64
	var shift uint
	for {
		if r.pos >= r.limit() {
			return 0, r.errTruncated()
		}
		b := r.buf[r.pos]
		r.pos++
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, werror.New(werror.VarintOverflow, "varint longer than 10 bytes")
		}
	}
}

// ReadRawVarint32 reads a varint and truncates it to 32 bits, matching the
// length-prefix reader used ahead of every length-delimited value.
func (r *Reader) ReadRawVarint32() (uint32, error) {
	v, err := r.ReadRawVarint64()
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// ReadTagUnpack reads one tag and unpacks it into a field number and wire
// type.
func (r *Reader) ReadTagUnpack() (wire.Number, wire.Type, error) {
	v, err := r.ReadRawVarint64()
	if err != nil {
		return 0, 0, err
	}
	num, typ := wire.DecodeTag(v)
	if num <= 0 {
		return 0, 0, werror.New(werror.Truncated, "field number 0 is not valid")
	}
	return num, typ, nil
}

func (r *Reader) readRawBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > r.limit() {
		return nil, r.errTruncated()
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) readRawFixed32() (uint32, error) {
	b, err := r.readRawBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

func (r *Reader) readRawFixed64() (uint64, error) {
	b, err := r.readRawBytes(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v, nil
}

// Scalar reads. Each returns a *werror.WireError on malformed input; the
// caller is responsible for validating the field's wire type before
// calling these.

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadRawVarint64()
	return int32(v), err
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadRawVarint64()
	return int64(v), err
}

func (r *Reader) ReadUint32() (uint32, error) {
	v, err := r.ReadRawVarint64()
	return uint32(v), err
}

func (r *Reader) ReadUint64() (uint64, error) {
	return r.ReadRawVarint64()
}

func (r *Reader) ReadSint32() (int32, error) {
	v, err := r.ReadRawVarint32()
	if err != nil {
		return 0, err
	}
	return wire.DecodeZigZag32(v), nil
}

func (r *Reader) ReadSint64() (int64, error) {
	v, err := r.ReadRawVarint64()
	if err != nil {
		return 0, err
	}
	return wire.DecodeZigZag64(v), nil
}

func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadRawVarint64()
	return v != 0, err
}

func (r *Reader) ReadFixed32() (uint32, error) { return r.readRawFixed32() }
func (r *Reader) ReadFixed64() (uint64, error) { return r.readRawFixed64() }

func (r *Reader) ReadSfixed32() (int32, error) {
	v, err := r.readRawFixed32()
	return int32(v), err
}

func (r *Reader) ReadSfixed64() (int64, error) {
	v, err := r.readRawFixed64()
	return int64(v), err
}

func (r *Reader) ReadFloat() (float32, error) {
	v, err := r.readRawFixed32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadDouble() (float64, error) {
	v, err := r.readRawFixed64()
	return math.Float64frombits(v), err
}

// StrictUTF8 controls whether ReadStringInto rejects invalid UTF-8.
// Disabled by default: the codec preserves string bytes as received
// unless configured strict.
var StrictUTF8 = false

func (r *Reader) ReadBytesInto(dst *[]byte) error {
	n, err := r.ReadRawVarint32()
	if err != nil {
		return err
	}
	b, err := r.readRawBytes(int(n))
	if err != nil {
		return err
	}
	*dst = append((*dst)[:0], b...)
	return nil
}

func (r *Reader) ReadStringInto(dst *string) error {
	n, err := r.ReadRawVarint32()
	if err != nil {
		return err
	}
	b, err := r.readRawBytes(int(n))
	if err != nil {
		return err
	}
	if StrictUTF8 && !utf8.Valid(b) {
		return werror.New(werror.InvalidUTF8, "")
	}
	*dst = string(b)
	return nil
}

// MergeMessage reads a length-delimited sub-message and merges it into
// decode, a callback supplied by the caller (since Reader has no knowledge
// of any particular message type).
func (r *Reader) MergeMessage(decode func(*Reader) error) error {
	n, err := r.ReadRawVarint32()
	if err != nil {
		return err
	}
	old, err := r.PushLimit(uint64(n))
	if err != nil {
		return err
	}
	if err := decode(r); err != nil {
		r.PopLimit(old)
		return err
	}
	if !r.EOF() {
		r.PopLimit(old)
		return werror.New(werror.Truncated, "sub-message did not consume its length prefix fully")
	}
	r.PopLimit(old)
	return nil
}

// SkipField discards the value of the given wire type without interpreting
// it, leaving the reader positioned just past it.
func (r *Reader) SkipField(typ wire.Type) error {
	switch typ {
	case wire.VarintType:
		_, err := r.ReadRawVarint64()
		return err
	case wire.Fixed32Type:
		_, err := r.readRawFixed32()
		return err
	case wire.Fixed64Type:
		_, err := r.readRawFixed64()
		return err
	case wire.BytesType:
		n, err := r.ReadRawVarint32()
		if err != nil {
			return err
		}
		_, err = r.readRawBytes(int(n))
		return err
	case wire.StartGroup:
		return r.skipGroup()
	case wire.EndGroup:
		return werror.New(werror.UnbalancedGroup, "end-group with no matching start-group")
	default:
		return werror.Newf(werror.UnexpectedWireType, "wire type %d", typ)
	}
}

// skipGroup reads and discards a balanced start/end group pair, including
// any nested groups.
func (r *Reader) skipGroup() error {
	if err := r.IncrRecursion(); err != nil {
		return err
	}
	defer r.DecrRecursion()
	for {
		_, typ, err := r.ReadTagUnpack()
		if err != nil {
			return err
		}
		if typ == wire.EndGroup {
			return nil
		}
		if err := r.SkipField(typ); err != nil {
			return err
		}
	}
}

// ReadUnknown reads and returns the raw value for wire type typ, for
// storage in an unknown.Fields bucket. It never accepts StartGroup/EndGroup
// directly: callers route groups through HandleUnrecognized instead.
func (r *Reader) ReadUnknown(typ wire.Type) (fixed32 uint32, fixed64 uint64, varint uint64, bytes []byte, err error) {
	switch typ {
	case wire.VarintType:
		varint, err = r.ReadRawVarint64()
	case wire.Fixed32Type:
		fixed32, err = r.readRawFixed32()
	case wire.Fixed64Type:
		fixed64, err = r.readRawFixed64()
	case wire.BytesType:
		var n uint32
		n, err = r.ReadRawVarint32()
		if err == nil {
			var b []byte
			b, err = r.readRawBytes(int(n))
			bytes = append([]byte(nil), b...)
		}
	default:
		err = werror.Newf(werror.UnexpectedWireType, "cannot preserve wire type %d as unknown", typ)
	}
	return
}

// HandleUnrecognized is the single entry point every UnmarshalFields falls
// through to for a field number its schema does not declare: it skips a
// start-group in its entirety (unrecognized groups are skipped, never
// preserved value-by-value) and otherwise either discards or preserves the
// value into fields depending on r.DiscardUnknown().
func (r *Reader) HandleUnrecognized(num wire.Number, typ wire.Type, fields *unknown.Fields) error {
	if typ == wire.StartGroup {
		return r.skipGroup()
	}
	if r.discardUnknown {
		return r.SkipField(typ)
	}
	fixed32, fixed64, varint, bytes, err := r.ReadUnknown(typ)
	if err != nil {
		return err
	}
	var v unknown.Value
	switch typ {
	case wire.VarintType:
		v = unknown.VarintValue(varint)
	case wire.Fixed32Type:
		v = unknown.Fixed32Value(fixed32)
	case wire.Fixed64Type:
		v = unknown.Fixed64Value(fixed64)
	case wire.BytesType:
		v = unknown.BytesValue(bytes)
	default:
		return werror.Newf(werror.UnexpectedWireType, "wire type %d", typ)
	}
	fields.Add(num, v)
	return nil
}
