package registry

import (
	"github.com/mreqlib/mreq/internal/bus/subscriber"
	"github.com/mreqlib/mreq/pkg/schema"
)

// Descriptor is the immutable, statically allocated metadata record a
// generator emits for each topic identity (spec.md §3). Its address
// (or, in this Go port, its MessageID) is the topic's identity at the
// API layer.
type Descriptor struct {
	// TopicName is the stable name the generator declared the topic
	// with.
	TopicName string

	// PayloadSize is sizeof(T) for the topic's message type. It is
	// recorded for diagnostics and is not compared at runtime; a
	// mismatched T is caught by the type check in Vtable.Publish,
	// which reports ErrPayloadSizeMismatch.
	PayloadSize int

	// MessageID is the DJB2 hash of TopicName. Two descriptors refer to
	// the same topic iff they share a MessageID.
	MessageID uint64

	// Schema is the optional serialization descriptor supplied by the
	// external schema toolchain; nil when the generator did not attach
	// one.
	Schema *schema.Descriptor

	// Vtable is the small set of type-erased operation trampolines
	// closing over the concrete Topic[T] instance, populated once at
	// topic-declaration time.
	Vtable Vtable
}

// Vtable holds one thin trampoline per Topic operation, each restoring
// the concrete T from the closure that built it. The top-level API
// (package api) looks up a Descriptor, then calls through these
// function pointers, then casts the opaque payload to T — the caller
// is responsible for matching T to the descriptor (spec.md §4.3
// "Operation dispatch").
type Vtable struct {
	Subscribe       func() (subscriber.Token, error)
	Unsubscribe     func(token subscriber.Token)
	Check           func(token subscriber.Token) bool
	Publish         func(msg any) error
	Read            func(token subscriber.Token) (any, bool)
	ReadMultiple    func(token subscriber.Token, out []any) int
	SubscriberCount func() int
}

// NewDescriptor builds a descriptor for topicName, computing its
// MessageID from the name. payloadSize and vtable are supplied by the
// generated topic-declaration glue (spec.md §6 "Topic declaration
// contract").
func NewDescriptor(topicName string, payloadSize int, vtable Vtable, sd *schema.Descriptor) *Descriptor {
	return &Descriptor{
		TopicName:   topicName,
		PayloadSize: payloadSize,
		MessageID:   MessageID(topicName),
		Schema:      sd,
		Vtable:      vtable,
	}
}
