// Package memory provides an in-memory persistence gateway used by tests and
// ephemeral environments. Values round-trip through the same JSON documents
// the MongoDB gateway stores.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mamadbah2/farmplan/internal/repository/storage"
)

// Repository keeps every document in a map. Safe for concurrent use.
type Repository struct {
	mu     sync.RWMutex
	docs   map[string]string
	logger *zap.Logger

	// failWrite and failRead inject faults for tests.
	failWrite error
	failRead  error
}

var _ storage.Gateway = (*Repository)(nil)

// NewRepository creates an empty in-memory gateway.
func NewRepository(logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		docs:   make(map[string]string),
		logger: logger,
	}
}

// FailWrites makes every subsequent Set/Remove/Clear return err. Pass nil to
// heal the store.
func (r *Repository) FailWrites(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWrite = err
}

// FailReads makes every subsequent Get behave as if the payload were
// unreadable. Pass nil to heal the store.
func (r *Repository) FailReads(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failRead = err
}

// Set serializes value to JSON and stores it under key. On failure the prior
// document is left untouched.
func (r *Repository) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("failed to serialize value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("serialize value for key %s: %w", key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWrite != nil {
		return fmt.Errorf("store value for key %s: %w", key, r.failWrite)
	}

	r.docs[key] = string(data)
	return nil
}

// Get loads the document under key into out. Missing keys and unreadable
// payloads report found=false.
func (r *Repository) Get(ctx context.Context, key string, out any) (bool, error) {
	r.mu.RLock()
	doc, ok := r.docs[key]
	failRead := r.failRead
	r.mu.RUnlock()

	if failRead != nil {
		r.logger.Error("failed to read value", zap.String("key", key), zap.Error(failRead))
		return false, nil
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(doc), out); err != nil {
		r.logger.Error("corrupt document treated as absent", zap.String("key", key), zap.Error(err))
		return false, nil
	}

	return true, nil
}

// Remove deletes the entry under key.
func (r *Repository) Remove(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWrite != nil {
		return fmt.Errorf("remove key %s: %w", key, r.failWrite)
	}

	delete(r.docs, key)
	return nil
}

// Clear deletes every entry.
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWrite != nil {
		return fmt.Errorf("clear storage: %w", r.failWrite)
	}

	r.docs = make(map[string]string)
	return nil
}

// Corrupt overwrites the document under key with a non-JSON payload. Test
// helper for the corrupt-read policy.
func (r *Repository) Corrupt(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[key] = "{not json"
}
