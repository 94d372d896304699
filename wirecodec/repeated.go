package wirecodec

import (
	"github.com/wireproto/wireproto/werror"
	"github.com/wireproto/wireproto/wire"
)

// Repeated/packed read dispatch. A decoder must accept both the packed
// (length-delimited) and unpacked (native wire type, one element per tag)
// representations of a repeated scalar field regardless of how the field
// was declared, so ReadRepeatedInto routes on the wire type it actually
// sees rather than on the field's declared packedness.

func unexpectedWireType(got, want wire.Type) error {
	return werror.Newf(werror.UnexpectedWireType, "got %s, want %s", got, want)
}

// ReadRepeatedInto reads either one packed run or one unpacked element of a
// scalar repeated field into dst, dispatching on typ. nativeType is the
// wire type the scalar would use unpacked (VarintType for all varint-coded
// kinds, Fixed32Type/Fixed64Type for the fixed-width kinds). readOne reads
// a single element with the reader already positioned at its value (no
// length prefix); it is used both for the unpacked path and, in a loop,
// for the packed path.
func ReadRepeatedInto[T any](r *Reader, typ wire.Type, nativeType wire.Type, dst *[]T, readOne func(*Reader) (T, error)) error {
	switch typ {
	case wire.BytesType:
		n, err := r.ReadRawVarint32()
		if err != nil {
			return err
		}
		old, err := r.PushLimit(uint64(n))
		if err != nil {
			return err
		}
		for !r.EOF() {
			v, err := readOne(r)
			if err != nil {
				r.PopLimit(old)
				return err
			}
			*dst = append(*dst, v)
		}
		r.PopLimit(old)
		return nil
	case nativeType:
		v, err := readOne(r)
		if err != nil {
			return err
		}
		*dst = append(*dst, v)
		return nil
	default:
		return unexpectedWireType(typ, nativeType)
	}
}

// ReadMessageInto reads one length-delimited message element — a singular
// message field, one element of a repeated message field, or a oneof's
// message variant. Messages are never packable, so there is no
// native/packed dispatch here, only the recursion accounting around the
// nested merge.
func ReadMessageInto(r *Reader, decode func(*Reader) error) error {
	if err := r.IncrRecursion(); err != nil {
		return err
	}
	defer r.DecrRecursion()
	return r.MergeMessage(decode)
}

// MapKeyFieldNumber and MapValueFieldNumber are the canonical field
// numbers 1 (key) and 2 (value) that every map-entry message uses.
// wirecodec has no notion of "the map" itself (that belongs to the
// message type holding the map field): it only knows how to read and
// validate one key/value pair off the wire.
const (
	MapKeyFieldNumber   wire.Number = 1
	MapValueFieldNumber wire.Number = 2
)

// ReadMapEntry reads one length-delimited map-entry sub-message, calling
// readKey/readValue when it encounters field numbers 1/2 respectively.
// A key or value carrying a wire type other than keyWireType/valWireType
// is a wire error; only unrecognized field numbers are skipped. On
// return, haveKey/haveValue report whether each side was actually present
// on the wire; the caller defaults a missing side to the element type's
// zero value rather than failing, the behavior the protobuf language
// guide specifies for map entries.
func ReadMapEntry(
	r *Reader,
	keyWireType, valWireType wire.Type,
	readKey func(*Reader) error,
	readValue func(*Reader) error,
) (haveKey, haveValue bool, err error) {
	n, err := r.ReadRawVarint32()
	if err != nil {
		return false, false, err
	}
	old, err := r.PushLimit(uint64(n))
	if err != nil {
		return false, false, err
	}
	for !r.EOF() {
		num, typ, err := r.ReadTagUnpack()
		if err != nil {
			r.PopLimit(old)
			return haveKey, haveValue, err
		}
		switch num {
		case MapKeyFieldNumber:
			if typ != keyWireType {
				r.PopLimit(old)
				return haveKey, haveValue, unexpectedWireType(typ, keyWireType)
			}
			if err := readKey(r); err != nil {
				r.PopLimit(old)
				return haveKey, haveValue, err
			}
			haveKey = true
		case MapValueFieldNumber:
			if typ != valWireType {
				r.PopLimit(old)
				return haveKey, haveValue, unexpectedWireType(typ, valWireType)
			}
			if err := readValue(r); err != nil {
				r.PopLimit(old)
				return haveKey, haveValue, err
			}
			haveValue = true
		default:
			if err := r.SkipField(typ); err != nil {
				r.PopLimit(old)
				return haveKey, haveValue, err
			}
		}
	}
	r.PopLimit(old)
	return haveKey, haveValue, nil
}

// ComputeMapEntrySize sizes one map entry's content (everything but its own
// enclosing tag and length prefix). The two implicit tags for field numbers
// 1 and 2 always cost exactly one byte each, since field numbers 1-15
// encode to a single tag byte.
func ComputeMapEntrySize(keySize, valueSize int) int {
	return wire.SizeTag(MapKeyFieldNumber) + keySize + wire.SizeTag(MapValueFieldNumber) + valueSize
}
