// Package topic implements the per-topic data path: one Topic[T]
// instance owns a ring buffer of N messages, a publish sequence
// counter, a write head, a subscriber table, and the mutex serializing
// all of it (spec.md §4.2).
package topic

import (
	"github.com/mreqlib/mreq/internal/bus/subscriber"
	"github.com/mreqlib/mreq/pkg/logger"
	"github.com/mreqlib/mreq/pkg/platform"
)

// Topic owns the data path for one named, typed channel. T is the
// message type; the ring buffer depth N is fixed at construction, not
// at the Go type level, since Go generics have no const-integer type
// parameter the way the C++ source's Topic<T, N> template does — a
// slice allocated once in New is the idiomatic substitute.
type Topic[T any] struct {
	name string

	buffer   []T
	head     uint
	sequence uint64

	mu          platform.Mutex
	subscribers *subscriber.Table

	log *logger.Logger
}

// New builds a Topic with ring depth n (n must be >= 1) and subscriber
// capacity maxSubscribers. mu is the platform-selected lock (spec.md
// §6 "Platform selection"); log may be nil to disable the diagnostics
// hook (spec.md §6 "Diagnostics").
func New[T any](name string, n uint, maxSubscribers uint, mu platform.Mutex, log *logger.Logger) *Topic[T] {
	if n == 0 {
		n = 1
	}
	return &Topic[T]{
		name:        name,
		buffer:      make([]T, n),
		mu:          mu,
		subscribers: subscriber.New(maxSubscribers),
		log:         log,
	}
}

// Name returns the topic's declared name.
func (t *Topic[T]) Name() string {
	return t.name
}

// Publish appends msg to the ring, overwriting the oldest slot on
// wrap. Never fails, never blocks beyond the mutex, never allocates.
func (t *Topic[T]) Publish(msg T) {
	t.mu.Lock()
	n := uint(len(t.buffer))
	t.buffer[t.head] = msg
	t.head = (t.head + 1) % n
	t.sequence++
	seq := t.sequence
	t.mu.Unlock()

	if t.log != nil {
		t.log.Debug("publish", "topic", t.name, "sequence", seq)
	}
}

// Subscribe claims a subscriber slot and positions it so the
// subscriber's first successful Read returns the next message
// published after this call, never any history (spec.md §4.2.1).
func (t *Topic[T]) Subscribe() (subscriber.Token, error) {
	t.mu.Lock()
	token, err := t.subscribers.Subscribe()
	if err == nil {
		n := uint(len(t.buffer))
		initialIdx := uint(0)
		if t.sequence >= uint64(n) {
			initialIdx = t.head
		}
		t.subscribers.UpdateReadState(token, t.sequence, initialIdx)
	}
	t.mu.Unlock()

	if t.log != nil {
		if err != nil {
			t.log.Debug("subscribe failed", "topic", t.name, "error", err)
		} else {
			t.log.Debug("subscribe", "topic", t.name, "token", token)
		}
	}
	return token, err
}

// Unsubscribe releases token back to the pool. Idempotent for invalid
// or already-released tokens.
func (t *Topic[T]) Unsubscribe(token subscriber.Token) {
	t.mu.Lock()
	t.subscribers.Unsubscribe(token)
	t.mu.Unlock()

	if t.log != nil {
		t.log.Debug("unsubscribe", "topic", t.name, "token", token)
	}
}

// Check reports whether token has at least one unread message.
func (t *Topic[T]) Check(token subscriber.Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.subscribers.Check(token, t.sequence)
}

// Read returns the next unread message for token, or ok=false if the
// subscriber is inactive or has nothing new. See spec.md §4.2.1 step 3
// for the overrun-reconciliation rule applied before the copy.
func (t *Topic[T]) Read(token subscriber.Token) (msg T, ok bool) {
	t.mu.Lock()

	slot := t.subscribers.Slot(token)
	if !slot.Active || slot.LastReadSeq >= t.sequence {
		t.mu.Unlock()
		return msg, false
	}

	// With n == 1 this leaves exactly one unread message: the latest.
	n := uint64(len(t.buffer))
	readIdx := slot.ReadBufferIdx
	if t.sequence-slot.LastReadSeq > n {
		readIdx = t.head
		slot.LastReadSeq = t.sequence - n
	}

	msg = t.buffer[readIdx]
	slot.LastReadSeq++
	slot.ReadBufferIdx = uint((uint64(readIdx) + 1) % n)
	seq := slot.LastReadSeq
	t.mu.Unlock()

	if t.log != nil {
		t.log.Debug("read", "topic", t.name, "token", token, "sequence", seq)
	}
	return msg, true
}

// ReadMultiple copies up to len(out) unread messages for token into
// out, returning the count actually copied. The whole call is one
// critical section: it never blocks and is mutually exclusive with
// Publish and every other Topic operation, but does not itself
// guarantee the copied messages were contiguous with respect to
// concurrent publishers racing ahead of it (spec.md §4.2.1).
func (t *Topic[T]) ReadMultiple(token subscriber.Token, out []T) int {
	t.mu.Lock()

	slot := t.subscribers.Slot(token)
	if !slot.Active {
		t.mu.Unlock()
		return 0
	}

	n := uint64(len(t.buffer))
	read := 0
	for read < len(out) && slot.LastReadSeq < t.sequence {
		readIdx := slot.ReadBufferIdx
		if t.sequence-slot.LastReadSeq > n {
			readIdx = t.head
			slot.LastReadSeq = t.sequence - n
		}

		out[read] = t.buffer[readIdx]
		read++
		slot.LastReadSeq++
		slot.ReadBufferIdx = uint((uint64(readIdx) + 1) % n)
	}
	t.mu.Unlock()

	if t.log != nil && read > 0 {
		t.log.Debug("read_multiple", "topic", t.name, "token", token, "count", read)
	}
	return read
}

// SubscriberCount returns the number of currently active subscribers.
func (t *Topic[T]) SubscriberCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.subscribers.Count()
}

// Sequence returns the total number of publishes since construction.
func (t *Topic[T]) Sequence() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sequence
}
