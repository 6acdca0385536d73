// Package schema describes the interface an external schema toolchain
// (a nanopb-style code generator, in the original C++ source) must
// satisfy to attach optional wire encoding/decoding to a topic's
// metadata descriptor. The bus core never imports this package from
// its hot path; it only stores a *Descriptor pointer on the registry's
// topic metadata and never calls it unless serialization is
// explicitly requested by a caller outside the core (spec.md §6).
package schema

import "google.golang.org/protobuf/proto"

// Descriptor is the optional serialization descriptor a generator
// attaches to a message type's metadata. Marshal/Unmarshal mirror the
// C++ source's nanopb_encode_func_t/nanopb_decode_func_t function
// pointer pair; Prototype is populated when the generated message type
// happens to also be a protobuf message, letting callers reach for
// proto.Marshal/proto.Unmarshal directly instead of hand-rolled codecs.
type Descriptor struct {
	// Marshal encodes a value of the topic's message type into buf,
	// returning the number of bytes written.
	Marshal func(value any, buf []byte) (int, error)

	// Unmarshal decodes buf into a value of the topic's message type.
	Unmarshal func(buf []byte, out any) error

	// Prototype is an optional protobuf message instance used as a
	// type witness when the generated message type implements
	// proto.Message; nil for schema toolchains that do not.
	Prototype proto.Message
}

// ProtoDescriptor builds a Descriptor backed directly by
// google.golang.org/protobuf's Marshal/Unmarshal, for generated message
// types that are themselves proto.Message implementations.
func ProtoDescriptor(prototype proto.Message) *Descriptor {
	return &Descriptor{
		Marshal: func(value any, buf []byte) (int, error) {
			msg, ok := value.(proto.Message)
			if !ok {
				return 0, errNotProtoMessage
			}
			out, err := proto.Marshal(msg)
			if err != nil {
				return 0, err
			}
			n := copy(buf, out)
			return n, nil
		},
		Unmarshal: func(buf []byte, out any) error {
			msg, ok := out.(proto.Message)
			if !ok {
				return errNotProtoMessage
			}
			return proto.Unmarshal(buf, msg)
		},
		Prototype: prototype,
	}
}
