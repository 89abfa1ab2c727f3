package otp

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// MemoryStore is a process-local Store used for local development without
// Redis and as the injectable double in tests. It does not survive restarts
// and is not shared across instances.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*memoryRecord
	now     func() time.Time
}

// NewMemoryStore creates an in-memory Store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*memoryRecord),
		now:     time.Now,
	}
}

// SetClock overrides the store's time source. Test hook.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Issue generates and stores a fresh code for the phone, overwriting any
// prior unconsumed code.
func (s *MemoryStore) Issue(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[phone] = &memoryRecord{
		code:      code,
		expiresAt: s.now().Add(TTL),
	}
	return code, nil
}

// Verify checks a candidate code. The mutex serializes attempt counting
// per store, which covers the per-key requirement.
func (s *MemoryStore) Verify(ctx context.Context, phone, candidate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[phone]
	if !ok {
		return ErrNotFound
	}
	if s.now().After(rec.expiresAt) {
		delete(s.records, phone)
		return ErrExpired
	}
	if rec.attempts >= MaxAttempts {
		delete(s.records, phone)
		return ErrTooManyAttempts
	}
	rec.attempts++
	if rec.code == candidate {
		delete(s.records, phone)
		return nil
	}
	return ErrMismatch
}

// Delete removes any record for the phone.
func (s *MemoryStore) Delete(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, phone)
	return nil
}
