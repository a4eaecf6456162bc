// ABOUTME: Storage slot abstraction for whole-document persistence
// ABOUTME: One scoped key, whole value; includes the in-memory implementation
package storage

import "sync"

// Slot is a single scoped key-value slot. Every persistence cycle
// reads or writes the entire document text; there are no partial
// updates. Last write wins.
type Slot interface {
	// Get returns the stored value and whether anything was stored.
	Get() ([]byte, bool, error)
	// Set replaces the stored value.
	Set(data []byte) error
	Close() error
}

// MemorySlot is a Slot held in process memory. Used in tests and as
// the degraded fallback when the on-disk store cannot be opened.
type MemorySlot struct {
	mu     sync.Mutex
	data   []byte
	stored bool
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) Get() ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stored {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

func (s *MemorySlot) Set(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.stored = true
	return nil
}

func (s *MemorySlot) Close() error { return nil }
