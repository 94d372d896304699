// Package protomsg is the facade every generated-looking message type
// implements and that callers use to marshal, unmarshal, size, compare,
// and clone them. The entry points and option structs follow the shape of
// the proto package's Marshal/Unmarshal/Size, dispatching through a
// narrow hand-implemented Message interface.
package protomsg

import (
	"bytes"
	"fmt"

	"github.com/wireproto/wireproto/unknown"
	"github.com/wireproto/wireproto/werror"
	"github.com/wireproto/wireproto/wirecodec"
)

// Message is implemented by every generated-looking message type. Every
// method is implemented per message type rather than derived from a
// struct tag or descriptor at init time; there is no reflection-based
// dynamic message machinery behind it.
type Message interface {
	// ProtoReset clears every field back to its zero value, including the
	// preserved unknown fields and the cached size.
	ProtoReset()

	// ProtoSize computes the encoded size in bytes and stores it in the
	// message's CachedSize.
	ProtoSize() int

	// MarshalFields appends this message's own fields (not a length
	// prefix for itself — the caller does that for nested messages) to w.
	MarshalFields(w *wirecodec.Writer) error

	// UnmarshalFields reads fields from r until r reaches its current
	// limit (EOF), routing anything not recognized through
	// UnknownFields().Add.
	UnmarshalFields(r *wirecodec.Reader) error

	// UnknownFields exposes the bucket unrecognized field values were
	// preserved into, for round-tripping and for Equal/Clone.
	UnknownFields() *unknown.Fields

	// RequiredFieldsSet reports whether every proto2 required field has
	// been populated, for AllowPartial enforcement.
	RequiredFieldsSet() bool
}

// Cloner is implemented by messages that can produce an independent deep
// copy of themselves. Kept as a separate interface from Message (rather
// than folded into it) since a handful of degenerate message types (no
// fields at all) have nothing to clone beyond what a fresh zero value
// already is.
type Cloner interface {
	Message
	ProtoClone() Message
}

// MarshalOptions configures Marshal.
type MarshalOptions struct {
	// AllowPartial suppresses the required-field check entirely. When
	// false (the default), a message with required fields unset still
	// encodes, but Marshal reports a *werror.RequiredNotSetError
	// alongside the bytes.
	AllowPartial bool
}

// Marshal encodes m using default options.
func Marshal(m Message) ([]byte, error) {
	return MarshalOptions{}.Marshal(m)
}

// Marshal encodes m per the configured options. An unset required field
// is non-fatal: the whole message is still encoded and returned alongside
// a *werror.RequiredNotSetError, so callers that want the partial bytes
// anyway can take them.
func (o MarshalOptions) Marshal(m Message) ([]byte, error) {
	var nf werror.NonFatal
	if !o.AllowPartial && !m.RequiredFieldsSet() {
		nf.Merge(&werror.RequiredNotSetError{Field: fmt.Sprintf("%T", m)})
	}
	size := m.ProtoSize()
	w := wirecodec.NewWriterSize(size)
	if err := m.MarshalFields(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nf.Err
}

// UnmarshalOptions configures Unmarshal.
type UnmarshalOptions struct {
	// AllowPartial suppresses the required-field check entirely. When
	// false (the default), a payload missing a required field still
	// populates m, but Unmarshal reports a *werror.RequiredNotSetError.
	AllowPartial bool
	// DiscardUnknown drops unrecognized fields instead of preserving
	// them in m.UnknownFields().
	DiscardUnknown bool
}

// Unmarshal decodes b into m using default options. m is reset first.
func Unmarshal(b []byte, m Message) error {
	return UnmarshalOptions{}.Unmarshal(b, m)
}

// Unmarshal decodes b into m per the configured options. m is reset
// first: decoding never merges into a message's prior contents unless
// the caller explicitly uses a merge-style API. A required field missing
// from the wire data is non-fatal: m is still fully populated with
// everything that was present, and the *werror.RequiredNotSetError is
// returned on top.
func (o UnmarshalOptions) Unmarshal(b []byte, m Message) error {
	m.ProtoReset()
	r := wirecodec.NewReader(b)
	r.SetDiscardUnknown(o.DiscardUnknown)
	if err := m.UnmarshalFields(r); err != nil {
		return err
	}
	var nf werror.NonFatal
	if !o.AllowPartial && !m.RequiredFieldsSet() {
		nf.Merge(&werror.RequiredNotSetError{Field: fmt.Sprintf("%T", m)})
	}
	return nf.Err
}

// Size returns m's encoded length, equivalent to len(Marshal(m)) but
// without allocating the encoded bytes.
func Size(m Message) int { return m.ProtoSize() }

// Equal reports whether a and b encode identically, using encoded-bytes
// comparison as the ground truth for equality. CachedSize never affects
// the wire form, so it never affects Equal.
func Equal(a, b Message) bool {
	ab, aerr := MarshalOptions{AllowPartial: true}.Marshal(a)
	bb, berr := MarshalOptions{AllowPartial: true}.Marshal(b)
	if aerr != nil || berr != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

// Clone returns an independent deep copy of m.
func Clone(m Cloner) Message { return m.ProtoClone() }
