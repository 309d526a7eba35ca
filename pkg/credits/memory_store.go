package credits

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory UsageStore for tests and single-process
// setups. All operations run under one mutex, which gives it the same
// atomic-increment and conditional-marker guarantees as the database
// stores.
type MemoryStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]UsageRecord
}

// NewMemoryStore returns an empty in-memory usage store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]UsageRecord)}
}

func (s *MemoryStore) Get(ctx context.Context, subjectID uuid.UUID) (UsageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[subjectID]
	if !ok {
		return UsageRecord{}, ErrUsageRecordNotFound
	}
	return record, nil
}

func (s *MemoryStore) Put(ctx context.Context, record UsageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.SubjectID] = record
	return nil
}

func (s *MemoryStore) IncrementConsumed(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.getOrCreate(subjectID)
	record.Consumed += delta
	s.records[subjectID] = record
	return nil
}

func (s *MemoryStore) IncrementTopUp(ctx context.Context, subjectID uuid.UUID, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.getOrCreate(subjectID)
	record.TopUp += delta
	s.records[subjectID] = record
	return nil
}

func (s *MemoryStore) TryMarkRechargeAttempt(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.getOrCreate(subjectID)
	if record.LastRechargeAttempt != nil && now.Sub(*record.LastRechargeAttempt) < window {
		return false, nil
	}
	record.LastRechargeAttempt = &now
	s.records[subjectID] = record
	return true, nil
}

func (s *MemoryStore) TryMarkExhaustionNotice(ctx context.Context, subjectID uuid.UUID, now time.Time, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.getOrCreate(subjectID)
	if record.LastExhaustionNotice != nil && now.Sub(*record.LastExhaustionNotice) < window {
		return false, nil
	}
	record.LastExhaustionNotice = &now
	s.records[subjectID] = record
	return true, nil
}

// getOrCreate must be called with the mutex held.
func (s *MemoryStore) getOrCreate(subjectID uuid.UUID) UsageRecord {
	record, ok := s.records[subjectID]
	if !ok {
		record = NewUsageRecord(subjectID, time.Now().UTC())
	}
	return record
}
