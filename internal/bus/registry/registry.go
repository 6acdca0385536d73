// Package registry implements the process-singleton TopicRegistry:
// the static table mapping a topic's stable identity to its
// type-erased Descriptor (spec.md §4.3).
package registry

import (
	"sync"

	"github.com/mreqlib/mreq/pkg/errors"
	"github.com/mreqlib/mreq/pkg/logger"
)

// Registry holds the process-wide mapping from topic identity to
// Descriptor. It is backed by two parallel fixed-capacity slices
// (messageIDs for a cheap integer compare, descriptors for the
// payload) rather than a map, matching spec.md §4.3's "O(topic_count)
// lookup with a small constant factor for small tables" and §5's "no
// heap allocation on any hot path" once the slices are preallocated at
// construction.
type Registry struct {
	mu sync.Mutex

	messageIDs  []uint64
	descriptors []*Descriptor
	count       int

	log *logger.Logger
}

// New builds a Registry with capacity maxTopics (MAX_TOPICS). log may
// be nil to disable the diagnostics hook.
func New(maxTopics int, log *logger.Logger) *Registry {
	return &Registry{
		messageIDs:  make([]uint64, maxTopics),
		descriptors: make([]*Descriptor, maxTopics),
		log:         log,
	}
}

// Register appends d if its MessageID is not already present and
// capacity remains. Intended to be called once per topic during
// startup, before any publisher/subscriber runs (spec.md §4.3).
func (r *Registry) Register(d *Descriptor) error {
	r.mu.Lock()

	for i := 0; i < r.count; i++ {
		if r.messageIDs[i] == d.MessageID {
			r.mu.Unlock()
			if r.log != nil {
				r.log.Warn("duplicate topic registration", "topic", d.TopicName)
			}
			return &errors.RegistryError{Descriptor: d.TopicName, Operation: "register", Err: errors.ErrDuplicateTopic}
		}
	}

	if r.count >= len(r.descriptors) {
		r.mu.Unlock()
		if r.log != nil {
			r.log.Warn("registry full", "topic", d.TopicName, "capacity", len(r.descriptors))
		}
		return &errors.RegistryError{Descriptor: d.TopicName, Operation: "register", Err: errors.ErrRegistryFull}
	}

	r.messageIDs[r.count] = d.MessageID
	r.descriptors[r.count] = d
	r.count++
	r.mu.Unlock()

	if r.log != nil {
		r.log.Info("registered topic", "topic", d.TopicName, "message_id", d.MessageID)
	}
	return nil
}

// Find performs a linear scan comparing message IDs, cheap even for
// the largest table this design targets (spec.md §4.3 default
// MAX_TOPICS <= 64). Called once per publish/subscribe/poll/read on
// the hot path.
func (r *Registry) Find(messageID uint64) (*Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < r.count; i++ {
		if r.messageIDs[i] == messageID {
			return r.descriptors[i], true
		}
	}
	return nil, false
}

// FindByName is a convenience wrapper computing the MessageID for name
// before calling Find; useful for CLI/diagnostic tools that only have
// a topic name, not a live Descriptor handle.
func (r *Registry) FindByName(name string) (*Descriptor, bool) {
	return r.Find(MessageID(name))
}

// Size returns the number of registered topics.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Full reports whether the registry is at capacity.
func (r *Registry) Full() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count >= len(r.descriptors)
}

// Empty reports whether no topics are registered.
func (r *Registry) Empty() bool {
	return r.Size() == 0
}

// Clear removes every registration. For tests only (spec.md §4.3).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < r.count; i++ {
		r.messageIDs[i] = 0
		r.descriptors[i] = nil
	}
	r.count = 0
}

// Iterate calls fn for each registered descriptor in registration
// order, stopping early if fn returns false. Diagnostic accessor.
func (r *Registry) Iterate(fn func(d *Descriptor) bool) {
	r.mu.Lock()
	snapshot := make([]*Descriptor, r.count)
	copy(snapshot, r.descriptors[:r.count])
	r.mu.Unlock()

	for _, d := range snapshot {
		if !fn(d) {
			return
		}
	}
}
