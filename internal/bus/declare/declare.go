// Package declare is the generator-facing glue surface: it builds the
// {static Topic instance, static Descriptor} pair spec.md §6 ("Topic
// declaration contract") says a code generator emits for each message
// type, without requiring the generated code to hand-write vtable
// trampolines itself.
package declare

import (
	"unsafe"

	"github.com/mreqlib/mreq/internal/bus/registry"
	"github.com/mreqlib/mreq/internal/bus/subscriber"
	"github.com/mreqlib/mreq/internal/bus/topic"
	"github.com/mreqlib/mreq/pkg/errors"
	"github.com/mreqlib/mreq/pkg/logger"
	"github.com/mreqlib/mreq/pkg/platform"
	"github.com/mreqlib/mreq/pkg/schema"
)

// Declare builds a topic of message type T: name is the stable
// topic_name, n is the ring depth N, maxSubscribers is
// MAX_SUBSCRIBERS, sd is an optional schema descriptor (nil if the
// topic carries no external schema). It returns the live Topic[T], for
// generated code that wants a typed handle alongside the Descriptor it
// hands to api.RegisterStartupHook.
//
// Matches the C++ source's REGISTER_TOPIC macro: a static Topic
// instance plus a TopicMetadata of closures over it, minus the macro —
// Go has no textual macros, so this is an ordinary generic function
// called once from generated code's init(), instead of expanding at
// compile time.
func Declare[T any](name string, n uint, maxSubscribers uint, sd *schema.Descriptor, log *logger.Logger) (*topic.Topic[T], *registry.Descriptor) {
	t := topic.New[T](name, n, maxSubscribers, platform.New(), log)

	vtable := registry.Vtable{
		Subscribe:   t.Subscribe,
		Unsubscribe: t.Unsubscribe,
		Check:       t.Check,
		Publish: func(msg any) error {
			typed, ok := msg.(T)
			if !ok {
				return &errors.TopicError{Topic: name, Operation: "publish", Err: errors.ErrPayloadSizeMismatch}
			}
			t.Publish(typed)
			return nil
		},
		Read: func(token subscriber.Token) (any, bool) {
			return t.Read(token)
		},
		ReadMultiple: func(token subscriber.Token, out []any) int {
			buf := make([]T, len(out))
			copied := t.ReadMultiple(token, buf)
			for i := 0; i < copied; i++ {
				out[i] = buf[i]
			}
			return copied
		},
		SubscriberCount: t.SubscriberCount,
	}

	var zero T
	d := registry.NewDescriptor(name, int(unsafe.Sizeof(zero)), vtable, sd)
	return t, d
}
