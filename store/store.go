// ABOUTME: Store runtime owning the live Document
// ABOUTME: Loads at startup, dispatches operations, persists after every accepted mutation
package store

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"culturadesk/models"
	"culturadesk/storage"
)

// Load reads persisted state from the slot. Nothing stored and corrupt
// state converge on the same empty document, so the rest of the program
// never special-cases a missing store.
func Load(slot storage.Slot, logger *log.Logger) models.Document {
	data, found, err := slot.Get()
	if err != nil {
		logger.Warn("reading persisted state failed; starting empty", "err", err)
		return models.EmptyDocument()
	}
	if !found {
		return models.EmptyDocument()
	}

	doc, err := Decode(data)
	if err != nil {
		logger.Warn("persisted state unreadable; starting empty", "err", err)
		return models.EmptyDocument()
	}
	return doc
}

// Store owns the live document. All mutation goes through Dispatch;
// everything else sees read-only snapshots.
type Store struct {
	mu      sync.RWMutex
	doc     models.Document
	persist func([]byte) error
	logger  *log.Logger
}

// New loads state from the slot and wires persistence to it.
func New(slot storage.Slot, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default().WithPrefix("store")
	}
	return &Store{
		doc:     Load(slot, logger),
		persist: slot.Set,
		logger:  logger,
	}
}

// NewWithPersist builds a store around an existing document and a
// custom persistence callback.
func NewWithPersist(doc models.Document, persist func([]byte) error, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default().WithPrefix("store")
	}
	return &Store{doc: doc, persist: persist, logger: logger}
}

// State returns the current document snapshot. Callers must not write
// through it; the next Dispatch replaces it wholesale.
func (s *Store) State() models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Dispatch applies one operation. The in-memory document is replaced
// only when the reducer reports a change, and every accepted mutation
// is written out immediately. A failed write is logged and never rolls
// the mutation back; memory stays authoritative.
func (s *Store) Dispatch(op Operation) {
	s.mu.Lock()
	next, changed := Apply(s.doc, op)
	if !changed {
		s.mu.Unlock()
		s.logger.Debug("operation left state unchanged", "op", fmt.Sprintf("%T", op))
		return
	}
	s.doc = next
	s.mu.Unlock()

	data, err := Encode(next)
	if err != nil {
		s.logger.Error("state not persisted", "err", err)
		return
	}
	if err := s.persist(data); err != nil {
		s.logger.Error("state not persisted; in-memory state kept", "err", err)
	}
}
