// Package testmsgs contains hand-written message types in the shape a
// protobuf code generator emits, exercising every field representation
// the planner can produce: bare proto3 scalars, proto2 presence and
// defaults, packed and unpacked repeated fields, maps, and a oneof with a
// self-referential variant.
package testmsgs

// Status is a small proto3-style enum used by Proto3Scalars, shaped the
// way protoc-gen-go emits an enum type: a defined int32 with a String
// method and a zero value that is the "unknown"/"unspecified" constant,
// making the proto3 default the first declared value.
type Status int32

const (
	Status_STATUS_UNKNOWN Status = 0
	Status_STATUS_OK      Status = 1
	Status_STATUS_ERROR   Status = 2
)

func (s Status) String() string {
	switch s {
	case Status_STATUS_OK:
		return "STATUS_OK"
	case Status_STATUS_ERROR:
		return "STATUS_ERROR"
	default:
		return "STATUS_UNKNOWN"
	}
}
