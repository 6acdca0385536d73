// Package errors provides the error kinds named in spec.md §7 and the
// typed wrappers that attach topic/registry context to them, following
// the teacher's wrap-with-context pattern (Err.Error() + Unwrap()).
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bus's error kinds (spec.md §7).
var (
	// ErrRegistryFull means TopicRegistry.Register was called with the
	// registry already at MAX_TOPICS. Fatal configuration error.
	ErrRegistryFull = errors.New("topic registry is full")

	// ErrDuplicateTopic means a descriptor with the same message ID was
	// already registered. Fatal configuration error.
	ErrDuplicateTopic = errors.New("topic already registered")

	// ErrUnknownTopic means the caller's descriptor is not registered.
	// Recoverable: the caller may choose to skip.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrNoSlot means the subscriber table is exhausted. The caller
	// decides whether to retry after someone unsubscribes.
	ErrNoSlot = errors.New("no free subscriber slot")

	// ErrPayloadSizeMismatch means the registered payload_size disagrees
	// with the caller's sizeof(T). Assertion-class: a programmer error.
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")
)

// TopicError wraps an error with the name of the topic and the
// operation being performed when it occurred.
type TopicError struct {
	Topic     string
	Operation string
	Err       error
}

func (e *TopicError) Error() string {
	return fmt.Sprintf("topic %s: operation %s: %v", e.Topic, e.Operation, e.Err)
}

func (e *TopicError) Unwrap() error {
	return e.Err
}

// RegistryError wraps an error encountered while registering or
// looking up a topic descriptor.
type RegistryError struct {
	Descriptor string
	Operation  string
	Err        error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry: topic %s: operation %s: %v", e.Descriptor, e.Operation, e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// IsTopicError reports whether err is (or wraps) a *TopicError.
func IsTopicError(err error) bool {
	var topicErr *TopicError
	return errors.As(err, &topicErr)
}

// IsRegistryError reports whether err is (or wraps) a *RegistryError.
func IsRegistryError(err error) bool {
	var registryErr *RegistryError
	return errors.As(err, &registryErr)
}
