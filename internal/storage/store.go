package storage

import (
	"context"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"
)

var ErrKeyNotFound = errors.New("key not found")

// Well known blob keys. One key holds one JSON blob.
const (
	KeyWorkoutHistory  = "workoutHistory"
	KeyPersonalRecords = "personalRecords"
	KeyBodyWeights     = "bodyWeights"
	KeyWorkoutPlan     = "workoutPlan"
)

// KV is the only storage contract the core depends on: whole-value get/set,
// no transactions, no partial writes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// GetJSON reads and unmarshals the blob at key. Any failure - store
// unavailable, key missing, corrupt payload - degrades to the given
// default instead of propagating an error.
func GetJSON[T any](ctx context.Context, kv KV, key string, def T) T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Warnf("storage get [%s]: %s, falling back to default", key, err)
		}
		return def
	}

	var val T
	if err := json.Unmarshal(raw, &val); err != nil {
		log.Warnf("storage get [%s]: corrupt blob: %s, falling back to default", key, err)
		return def
	}
	return val
}

// SetJSON marshals and stores the value at key, reporting success as a
// boolean. Failures are logged, never raised.
func SetJSON[T any](ctx context.Context, kv KV, key string, val T) bool {
	raw, err := json.Marshal(val)
	if err != nil {
		log.Errorf("storage set [%s]: marshal: %s", key, err)
		return false
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		log.Errorf("storage set [%s]: %s", key, err)
		return false
	}
	return true
}
