package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/hailam/bitframe/internal/board"
)

// Storage key prefixes
const (
	runPrefix   = "run/"
	framePrefix = "frame/"
)

var (
	ErrRunNotFound   = errors.New("storage: run not found")
	ErrFrameNotFound = errors.New("storage: frame not found")
)

// Run records one generation pass: a root frame and every successor of
// the side to move, both in placement notation. Hashes[i] is the hash of
// Successors[i] and keys it for SaveFrame/LoadFrame.
type Run struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Side       string    `json:"side"`
	Root       string    `json:"root"`
	RootHash   uint64    `json:"root_hash"`
	Moves      []string  `json:"moves"`
	Successors []string  `json:"successors"`
	Hashes     []uint64  `json:"hashes"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the default data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun generates the successors of f for side and stores the run.
func (s *Storage) RecordRun(f board.Frame, side board.Side) (*Run, error) {
	moves := f.GenerateMoves(side)
	next := f.Successors(side)

	run := &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Side:      side.String(),
		Root:      f.Placement(),
		RootHash:  f.Hash(),
	}
	for i, m := range moves.Slice() {
		run.Moves = append(run.Moves, m.Format(side))
		run.Successors = append(run.Successors, next[i].Placement())
		run.Hashes = append(run.Hashes, f.HashAfter(run.RootHash, side, m))
	}

	data, err := json.Marshal(run)
	if err != nil {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(runPrefix+run.ID), data)
	})
	if err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// LoadRun loads a run by id.
func (s *Storage) LoadRun(id string) (*Run, error) {
	run := &Run{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(runPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, run)
		})
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns every stored run, oldest first.
func (s *Storage) ListRuns() ([]*Run, error) {
	var runs []*Run

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(runPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			run := &Run{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, run)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Keys are random ids; order by time, ties by id.
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.Before(runs[j].CreatedAt)
		}
		return strings.Compare(runs[i].ID, runs[j].ID) < 0
	})
	return runs, nil
}

func frameKey(hash uint64) []byte {
	return []byte(fmt.Sprintf("%s%016x", framePrefix, hash))
}

// SaveFrame stores f under its hash and returns the hash.
func (s *Storage) SaveFrame(f board.Frame) (uint64, error) {
	data, err := f.MarshalBinary()
	if err != nil {
		return 0, err
	}
	hash := f.Hash()

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(frameKey(hash), data)
	})
	return hash, err
}

// LoadFrame loads the frame stored under hash.
func (s *Storage) LoadFrame(hash uint64) (board.Frame, error) {
	var f board.Frame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(frameKey(hash))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %016x", ErrFrameNotFound, hash)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return f.UnmarshalBinary(val)
		})
	})
	return f, err
}
