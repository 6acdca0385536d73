// Package subscriber implements the fixed-capacity subscriber table
// each Topic owns: it allocates and frees subscriber slots and tracks
// each slot's read progress relative to the topic's sequence counter.
package subscriber

import "github.com/mreqlib/mreq/pkg/errors"

// Token identifies one subscription inside one topic. Tokens are slot
// indices in [0, capacity) and are only meaningful paired with the
// topic that issued them.
type Token = uint

// Slot is one subscriber's bookkeeping record. While Active:
//   - LastReadSeq <= the owning topic's sequence
//   - ReadBufferIdx names the next ring slot this subscriber will read
type Slot struct {
	Active        bool
	LastReadSeq   uint64
	ReadBufferIdx uint
}

// Table is a fixed-size array of subscriber slots. It has no mutex of
// its own: it is always embedded in a Topic, and the topic's mutex
// protects both the ring buffer and this table in one critical
// section, per spec.md §4.1 ("tables live inside topics and share the
// topic mutex semantics"). Callers of Table's methods are therefore
// required to already hold that lock.
type Table struct {
	slots []Slot
}

// New builds a table with the given subscriber capacity
// (MAX_SUBSCRIBERS).
func New(capacity uint) *Table {
	return &Table{slots: make([]Slot, capacity)}
}

// Capacity returns the table's fixed slot count.
func (t *Table) Capacity() uint {
	return uint(len(t.slots))
}

// Subscribe claims the first inactive slot in ascending index order.
// The returned slot's LastReadSeq/ReadBufferIdx are placeholders (0);
// the owning Topic overwrites them immediately via UpdateReadState so
// a fresh subscriber only sees messages published after it subscribes.
func (t *Table) Subscribe() (Token, error) {
	for i := range t.slots {
		if !t.slots[i].Active {
			t.slots[i] = Slot{Active: true}
			return Token(i), nil
		}
	}
	return 0, errors.ErrNoSlot
}

// Unsubscribe deactivates a slot and resets its read progress. Invalid
// tokens are silently ignored.
func (t *Table) Unsubscribe(token Token) {
	if token >= Token(len(t.slots)) {
		return
	}
	t.slots[token] = Slot{}
}

// Check reports whether an active subscriber has at least one unread
// message relative to currentSeq.
func (t *Table) Check(token Token, currentSeq uint64) bool {
	if token >= Token(len(t.slots)) {
		return false
	}
	s := &t.slots[token]
	return s.Active && s.LastReadSeq < currentSeq
}

// UpdateReadState writes both read-progress fields for an active slot
// in one step.
func (t *Table) UpdateReadState(token Token, newSeq uint64, newIdx uint) {
	if token >= Token(len(t.slots)) {
		return
	}
	s := &t.slots[token]
	if s.Active {
		s.LastReadSeq = newSeq
		s.ReadBufferIdx = newIdx
	}
}

// Slot returns a mutable reference to the slot for token, for use by
// the owning Topic while the Topic already holds its mutex. Invalid
// tokens return a reference to a throwaway zero slot so callers never
// need a separate bounds check before dereferencing.
func (t *Table) Slot(token Token) *Slot {
	if token >= Token(len(t.slots)) {
		return &Slot{}
	}
	return &t.slots[token]
}

// Count returns the number of currently active subscribers.
func (t *Table) Count() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].Active {
			n++
		}
	}
	return n
}
