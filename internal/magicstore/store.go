package magicstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "magics/"

// MagicSet is one persisted search result: 64 multipliers for a slider
// class plus bookkeeping about how it was found.
type MagicSet struct {
	Piece    string        `json:"piece"` // "bishop" or "rook"
	Magics   [64]uint64    `json:"magics"`
	Tries    uint64        `json:"tries"` // candidates tested across all squares
	Seed     int64         `json:"seed"`
	FoundAt  time.Time     `json:"found_at"`
	Duration time.Duration `json:"duration"`
}

// Store wraps BadgerDB for magic-set persistence.
type Store struct {
	db *badger.DB
}

// Open opens the store in the default platform data directory.
func Open() (*Store, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the store at an explicit directory.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open magic store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists a magic set under its piece name, replacing any previous
// set for that piece.
func (s *Store) Save(set *MagicSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+set.Piece), data)
	})
}

// Load returns the stored magic set for a piece, or (nil, nil) if none
// has been saved yet.
func (s *Store) Load(piece string) (*MagicSet, error) {
	var set *MagicSet

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + piece))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			set = &MagicSet{}
			return json.Unmarshal(val, set)
		})
	})

	return set, err
}

// Pieces lists the piece names with a stored magic set.
func (s *Store) Pieces() ([]string, error) {
	var pieces []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			pieces = append(pieces, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})

	return pieces, err
}
