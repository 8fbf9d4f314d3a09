// Package store persists game sessions in badger.
//
// A session is stored as its start position plus the moves played, and is
// rebuilt by replaying the moves on load. Keys are "game/<id>".
package store

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/output"
)

const keyPrefix = "game/"

// record is the stored form of a session.
type record struct {
	Start   output.JSONPosition `json:"start"`
	Moves   []string            `json:"moves"`
	Updated time.Time           `json:"updated"`
}

// GameStore wraps BadgerDB for session persistence.
type GameStore struct {
	db  *badger.DB
	log zerolog.Logger
}

// Open opens the store described by cfg.
func Open(cfg config.StoreConfig, log zerolog.Logger) (*GameStore, error) {
	opts := badger.DefaultOptions(cfg.Dir)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open game store")
	}
	log.Debug().Bool("in_memory", cfg.InMemory).Str("dir", cfg.Dir).Msg("game store opened")
	return &GameStore{db: db, log: log}, nil
}

// Close closes the database.
func (s *GameStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Create stores a new session and returns its id.
func (s *GameStore) Create(g *engine.Game) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}
	if err := s.Save(id, g); err != nil {
		return "", err
	}
	s.log.Info().Str("game", id).Msg("game created")
	return id, nil
}

// Save writes a session under id, replacing any earlier version.
func (s *GameStore) Save(id string, g *engine.Game) error {
	start := g.Start()
	rec := record{
		Start:   output.PositionToJSON(&start),
		Moves:   make([]string, 0, len(g.History())),
		Updated: time.Now().UTC(),
	}
	for _, m := range g.History() {
		rec.Moves = append(rec.Moves, m.UCI())
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "encode game %s", id)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(id), data)
	})
	if err != nil {
		return errors.Wrapf(err, "save game %s", id)
	}
	s.log.Debug().Str("game", id).Int("plies", len(rec.Moves)).Msg("game saved")
	return nil
}

// Load rebuilds the session stored under id.
func (s *GameStore) Load(id string) (*engine.Game, error) {
	var rec record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}

	start, err := output.PositionFromJSON(rec.Start)
	if err != nil {
		return nil, errors.Wrapf(err, "decode game %s", id)
	}
	moves := make([]chess.Move, len(rec.Moves))
	for i, text := range rec.Moves {
		if moves[i], err = chess.ParseUCI(text); err != nil {
			return nil, errors.Wrapf(err, "decode game %s", id)
		}
	}
	return engine.Replay(start, moves)
}

// Delete removes the session stored under id.
func (s *GameStore) Delete(id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(id)); err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
		} else if err != nil {
			return err
		}
		return txn.Delete(key(id))
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("game", id).Msg("game deleted")
	return nil
}

// List returns the ids of all stored sessions in key order.
func (s *GameStore) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(keyPrefix):]))
		}
		return nil
	})
	return ids, err
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

// newID returns 16 random hex characters.
func newID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate game id")
	}
	return hex.EncodeToString(b), nil
}
