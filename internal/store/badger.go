package store

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// Badger is an embedded-KV backed Store, the durable option for a
// single-node deployment that needs its keyword/trending caches to
// survive a restart. One local file, no per-tenant namespacing.
type Badger struct {
	db *badger.DB
}

// OpenBadger opens (creating if absent) a Badger database at dir.
func OpenBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}

func (b *Badger) Load(_ context.Context, kind, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(kind, key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(v []byte) error {
			value = append([]byte(nil), v...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *Badger) Commit(_ context.Context, kind, key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(kind, key), value)
	})
}
