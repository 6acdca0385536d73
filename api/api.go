// Package api is the top-level, language-neutral surface spec.md §6
// names: init, subscribe, unsubscribe, check, publish, read,
// read_multiple, exists. Each operation takes a descriptor handle (the
// topic's identity) and looks it up in the process singleton registry
// before calling through its vtable.
package api

import (
	"sync"

	"github.com/mreqlib/mreq/internal/bus/registry"
	"github.com/mreqlib/mreq/internal/bus/subscriber"
	"github.com/mreqlib/mreq/pkg/errors"
	"github.com/mreqlib/mreq/pkg/logger"
)

// DefaultMaxTopics is MAX_TOPICS's default (spec.md §6).
const DefaultMaxTopics = 16

var (
	processRegistry = registry.New(DefaultMaxTopics, logger.WithField("component", "mreq"))

	startupHooks   []func(*registry.Registry) error
	startupHooksMu sync.Mutex
	initOnce       sync.Once
	initErr        error
)

// RegisterStartupHook adds a one-shot hook that registers a topic's
// descriptor with the process registry. Generated topic-declaration
// glue calls this from a package-level init() (spec.md §6 "Topic
// declaration contract"); Init runs every registered hook exactly once.
func RegisterStartupHook(hook func(*registry.Registry) error) {
	startupHooksMu.Lock()
	defer startupHooksMu.Unlock()
	startupHooks = append(startupHooks, hook)
}

// Init runs every registered startup hook exactly once. It is
// idempotent and must be called before any other API call
// (spec.md §6).
func Init() error {
	initOnce.Do(func() {
		startupHooksMu.Lock()
		hooks := append([]func(*registry.Registry) error(nil), startupHooks...)
		startupHooksMu.Unlock()

		for _, hook := range hooks {
			if err := hook(processRegistry); err != nil {
				initErr = err
				return
			}
		}
	})
	return initErr
}

// Exists reports whether a descriptor is registered.
func Exists(d *registry.Descriptor) bool {
	_, ok := processRegistry.Find(d.MessageID)
	return ok
}

// Subscribe returns a fresh subscription token for topic d, or
// errors.ErrUnknownTopic if d is not registered, or errors.ErrNoSlot if
// the topic's subscriber table is exhausted.
func Subscribe(d *registry.Descriptor) (subscriber.Token, error) {
	entry, ok := processRegistry.Find(d.MessageID)
	if !ok {
		return 0, &errors.TopicError{Topic: d.TopicName, Operation: "subscribe", Err: errors.ErrUnknownTopic}
	}
	return entry.Vtable.Subscribe()
}

// Unsubscribe releases token on topic d. A no-op if d is unknown.
func Unsubscribe(d *registry.Descriptor, token subscriber.Token) {
	entry, ok := processRegistry.Find(d.MessageID)
	if !ok {
		return
	}
	entry.Vtable.Unsubscribe(token)
}

// Check reports whether token has at least one unread message on
// topic d. Returns false if d is unknown.
func Check(d *registry.Descriptor, token subscriber.Token) bool {
	entry, ok := processRegistry.Find(d.MessageID)
	if !ok {
		return false
	}
	return entry.Vtable.Check(token)
}

// Publish publishes msg to topic d. Returns errors.ErrUnknownTopic if
// d is not registered, or errors.ErrPayloadSizeMismatch if msg is not
// of the message type T the topic was declared with (the descriptor's
// Publish trampoline checks the type; PayloadSize is not compared).
func Publish(d *registry.Descriptor, msg any) error {
	entry, ok := processRegistry.Find(d.MessageID)
	if !ok {
		return &errors.TopicError{Topic: d.TopicName, Operation: "publish", Err: errors.ErrUnknownTopic}
	}
	return entry.Vtable.Publish(msg)
}

// Read returns the next unread message for token on topic d, or
// ok=false if there is nothing new or d is unknown.
func Read(d *registry.Descriptor, token subscriber.Token) (msg any, ok bool) {
	entry, found := processRegistry.Find(d.MessageID)
	if !found {
		return nil, false
	}
	return entry.Vtable.Read(token)
}

// ReadMultiple copies up to len(out) unread messages for token on
// topic d into out, returning the count copied.
func ReadMultiple(d *registry.Descriptor, token subscriber.Token, out []any) int {
	entry, ok := processRegistry.Find(d.MessageID)
	if !ok {
		return 0
	}
	return entry.Vtable.ReadMultiple(token, out)
}

// Registry exposes the process singleton for diagnostics callers
// (cmd/mreqctl, internal/diagnostics) that need Size/Iterate/etc.
// beyond the typed operations above.
func Registry() *registry.Registry {
	return processRegistry
}
