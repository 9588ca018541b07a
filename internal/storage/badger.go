package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/2beens/ironlog/internal/telemetry/tracing"

	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const gcDiscardRatio = 0.5

// BadgerStore is the on-device KV blob store. A single instance owns the
// database directory for the lifetime of the process.
type BadgerStore struct {
	db       *badger.DB
	gcTicker *time.Ticker
	gcDone   chan struct{}
}

// NewBadgerStore opens (and creates, if needed) the database at dataDir.
func NewBadgerStore(dataDir string) (*BadgerStore, error) {
	if dataDir == "" {
		return nil, errors.New("data dir is required")
	}
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dataDir, err)
	}

	opts := badger.DefaultOptions(dataDir).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	s := &BadgerStore{
		db:     db,
		gcDone: make(chan struct{}),
	}
	s.gcTicker = time.NewTicker(5 * time.Minute)
	go s.runGC()

	return s, nil
}

// NewInMemoryBadgerStore is used in tests: no disk, no value log GC.
func NewInMemoryBadgerStore() (*BadgerStore, error) {
	db, err := badger.Open(
		badger.DefaultOptions("").
			WithInMemory(true).
			WithLogger(nil),
	)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	var value []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *BadgerStore) Set(ctx context.Context, key string, value []byte) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))
	span.SetAttributes(attribute.Int("size", len(value)))

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *BadgerStore) Close() error {
	if s.gcTicker != nil {
		s.gcTicker.Stop()
		close(s.gcDone)
	}
	return s.db.Close()
}

func (s *BadgerStore) runGC() {
	for {
		select {
		case <-s.gcDone:
			return
		case <-s.gcTicker.C:
			err := s.db.RunValueLogGC(gcDiscardRatio)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				log.Warnf("badger value log GC: %s", err)
			}
		}
	}
}
