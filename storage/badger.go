// ABOUTME: BadgerDB-backed storage slot at an XDG data path
// ABOUTME: Stores the whole document under one key, cultural_management_state
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
)

// stateKey is the single key the organizer persists under. It matches
// the key older releases used, so existing state carries over.
const stateKey = "cultural_management_state"

// BadgerSlot implements Slot on a local BadgerDB directory.
type BadgerSlot struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) the store directory.
func OpenBadger(dir string) (*BadgerSlot, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}

	return &BadgerSlot{db: db}, nil
}

func (s *BadgerSlot) Get() ([]byte, bool, error) {
	var data []byte
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(stateKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			data = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("read state: %w", err)
	}

	return data, found, nil
}

func (s *BadgerSlot) Set(data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), data)
	})
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func (s *BadgerSlot) Close() error {
	return s.db.Close()
}

// DefaultDir returns the conventional store location under base
// (normally xdg.DataHome).
func DefaultDir(base, appName string) string {
	return filepath.Join(base, appName, "state")
}
